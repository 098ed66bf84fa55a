package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/johnmpetty/progress/generator"
	"github.com/johnmpetty/progress/model"
)

var serveStartOnNonRoot bool
var serveOnlyCommon bool

// The generator's bags and every progression cursor are guarded by one
// mutex; neither provides its own locking.
var serveMu sync.Mutex
var serveGenerator *generator.Generator
var servedProgressions = make(map[string]*model.Progression)

func init() {
	serveCmd.Flags().BoolVar(&serveStartOnNonRoot, "start-on-non-root", false,
		"Start progressions on any degree")
	serveCmd.Flags().BoolVar(&serveOnlyCommon, "only-use-common-progressions", false,
		"Only use fixed common progressions")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves progressions over HTTP",
	Long:  `Serves progressions over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		if serveStartOnNonRoot && serveOnlyCommon {
			fmt.Println("Can't specify start on non root when using common progressions")
			os.Exit(1)
		}
		serve()
	},
}

// InitServeState wires the shared generator. Exported for the e2e test.
func InitServeState(cfg generator.Config) {
	serveGenerator = generator.New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func toResponse(id string, p *model.Progression) model.ProgressionResponse {
	return model.ProgressionResponse{
		Id:                 id,
		Root:               p.Root,
		Scale:              string(p.Scale),
		Chords:             p.Chords,
		Bpm:                p.BPM,
		CurrentChord:       p.CurrentChord(),
		NextChord:          p.NextChord(),
		QuarterNoteSeconds: p.QuarterNoteSeconds(),
	}
}

func HandleCreateProgression(w http.ResponseWriter, r *http.Request) {
	serveMu.Lock()
	p := serveGenerator.NewProgression()
	id := uuid.New().String()
	servedProgressions[id] = p
	res := toResponse(id, p)
	serveMu.Unlock()

	json.NewEncoder(w).Encode(res)
}

func HandleGetProgression(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	serveMu.Lock()
	p, ok := servedProgressions[id]
	var res model.ProgressionResponse
	if ok {
		res = toResponse(id, p)
	}
	serveMu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "No progression with id: " + id})
		return
	}
	json.NewEncoder(w).Encode(res)
}

func HandleAdvanceProgression(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	serveMu.Lock()
	p, ok := servedProgressions[id]
	var res model.ProgressionResponse
	if ok {
		p.AdvanceChord()
		res = toResponse(id, p)
	}
	serveMu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "No progression with id: " + id})
		return
	}
	json.NewEncoder(w).Encode(res)
}

// NewRouter builds the progression API. Exported for the e2e test.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/progressions", HandleCreateProgression).Methods("POST")
	router.HandleFunc("/progressions/{id}", HandleGetProgression).Methods("GET")
	router.HandleFunc("/progressions/{id}/advance", HandleAdvanceProgression).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() {
	InitServeState(generator.Config{
		StartOnNonRoot:         serveStartOnNonRoot,
		OnlyCommonProgressions: serveOnlyCommon,
	})
	log.Fatal(http.ListenAndServe(":8080", NewRouter()))
}
