package constants

import "os"

func GetScoresDir() string {
	path := os.Getenv("SCORES_PATH")
	if path != "" {
		return path
	}
	return "./scores"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetMetadataTable returns the DynamoDB table holding score metadata, or ""
// when metadata lookup is disabled.
func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("METADATA_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetMetadataRegion() string {
	region := os.Getenv("METADATA_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

// DefaultDivisions applies when a document never declares a divisions value.
const DefaultDivisions = 1

// ExportTicksPerQuarter is the metric resolution of exported MIDI files.
const ExportTicksPerQuarter = 960
