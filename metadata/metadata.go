package metadata

import (
	"strconv"

	"github.com/bryandebourbon/musicreader/constants"
	"github.com/bryandebourbon/musicreader/model"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Enabled reports whether a metadata table is configured at all.
func Enabled() bool {
	return constants.GetMetadataTable() != ""
}

// GetScoreMetadatas resolves catalog rows for up to 10 score ids from the
// configured DynamoDB table. Ids without a row are simply absent from the
// result.
func GetScoreMetadatas(ids []string) (map[string]model.ScoreMetadata, error) {
	if len(ids) > 10 {
		return nil, errors.New("not supposed to pass in more than 10 ids")
	}

	res := make(map[string]model.ScoreMetadata)
	if len(ids) == 0 || !Enabled() {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetMetadataEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetMetadataRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}

	client := dynamodb.New(sess)
	table := constants.GetMetadataTable()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}

	for _, v := range dbres.Responses[table] {
		var s model.ScoreMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		if v["Title"] != nil && v["Title"].S != nil {
			s.Title = *v["Title"].S
		}
		if v["Composer"] != nil && v["Composer"].S != nil {
			s.Composer = *v["Composer"].S
		}
		res[*v["PK"].S] = s
	}

	return res, nil
}
