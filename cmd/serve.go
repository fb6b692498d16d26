package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/bryandebourbon/musicreader/constants"
	"github.com/bryandebourbon/musicreader/metadata"
	"github.com/bryandebourbon/musicreader/model"
	"github.com/bryandebourbon/musicreader/pipeline"
	"github.com/bryandebourbon/musicreader/util"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the upload and analysis API",
	Long:  `Serves the upload and analysis API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var (
	analysisMu    sync.Mutex
	analysisCache = make(map[string]*pipeline.Result)

	// currentRunner holds the most recently uploaded score; rapid uploads
	// supersede each other, last one wins.
	currentRunner = pipeline.NewRunner(100 * time.Millisecond)
)

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleUpload stores the posted score under SCORES_PATH with a uuid name
// and makes it the current score.
func HandleUpload(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body: "+err.Error())
		return
	}
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "score.xml"
	}
	if !util.IsScorePath(filename) {
		writeError(w, 400, "unsupported score extension: "+filepath.Ext(filename))
		return
	}

	id := uuid.New().String()
	stored := id + strings.ToLower(filepath.Ext(filename))
	if err := os.MkdirAll(constants.GetScoresDir(), 0777); err != nil {
		writeError(w, 500, "could not create scores dir: "+err.Error())
		return
	}
	if err := os.WriteFile(filepath.Join(constants.GetScoresDir(), stored), data, 0666); err != nil {
		writeError(w, 500, "could not store score: "+err.Error())
		return
	}

	currentRunner.Load(data, stored)

	json.NewEncoder(w).Encode(model.UploadResponse{Id: id, Filename: filename})
}

func analysisFor(id string) (*pipeline.Result, error) {
	analysisMu.Lock()
	defer analysisMu.Unlock()
	if res, ok := analysisCache[id]; ok {
		return res, nil
	}

	matches, err := filepath.Glob(filepath.Join(constants.GetScoresDir(), id+".*"))
	if err != nil || len(matches) == 0 {
		return nil, fmt.Errorf("no stored score with id %v", id)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return nil, err
	}
	res, err := pipeline.Run(data, matches[0])
	if err != nil {
		return nil, err
	}
	analysisCache[id] = res
	return res, nil
}

func buildAnalysisResponse(id string, res *pipeline.Result) model.AnalysisResponse {
	resp := model.AnalysisResponse{
		Id:          id,
		Filename:    res.Filename,
		Title:       res.Title,
		Composer:    res.Composer,
		NumNotes:    len(res.Arena.Notes),
		NumMeasures: len(res.Arena.Measures),
		TotalBeats:  res.TotalBeats(),
		Timeline:    res.Timeline,
		Groups:      res.Groups,
		Warnings:    res.WarningStrings(),
	}
	if metadata.Enabled() {
		metadatas, err := metadata.GetScoreMetadatas([]string{id})
		if err != nil {
			log.Printf("metadata lookup failed for %v: %v", id, err)
		} else if md, ok := metadatas[id]; ok {
			resp.Metadata = &md
		}
	}
	return resp
}

// HandleAnalysis runs (or reuses) the pipeline for a stored score.
func HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := analysisFor(id)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}
	json.NewEncoder(w).Encode(buildAnalysisResponse(id, res))
}

// HandlePatterns returns just the pattern groups for a stored score.
func HandlePatterns(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := analysisFor(id)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.PatternsResponse{Id: id, Groups: res.Groups})
}

// HandleCurrent returns the analysis of the most recently uploaded score.
func HandleCurrent(w http.ResponseWriter, r *http.Request) {
	res, err := currentRunner.Latest()
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}
	if res == nil {
		writeError(w, 404, "no score has been loaded yet")
		return
	}
	json.NewEncoder(w).Encode(buildAnalysisResponse("current", res))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scores", HandleUpload).Methods("POST")
	router.HandleFunc("/scores/{id}", HandleAnalysis).Methods("GET")
	router.HandleFunc("/scores/{id}/patterns", HandlePatterns).Methods("GET")
	router.HandleFunc("/current", HandleCurrent).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
