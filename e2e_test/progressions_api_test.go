//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/johnmpetty/progress/cmd"
	"github.com/johnmpetty/progress/generator"
	"github.com/johnmpetty/progress/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	cmd.InitServeState(generator.Config{})
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func decodeProgression(t *testing.T, body io.Reader) model.ProgressionResponse {
	var res model.ProgressionResponse
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		t.Fatal("Could not decode response: " + err.Error())
	}
	return res
}

func TestCreateProgressionE2E(t *testing.T) {
	resp, err := http.Post(server.URL+"/progressions", "application/json", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(200, resp.StatusCode)

	created := decodeProgression(t, resp.Body)
	assert.NotEmpty(created.Id)
	assert.GreaterOrEqual(len(created.Chords), 3)
	assert.LessOrEqual(len(created.Chords), 5)
	assert.Equal(created.Chords[0], created.CurrentChord)
	assert.Equal(created.Chords[1], created.NextChord)
	assert.InDelta(60.0/float64(created.Bpm), created.QuarterNoteSeconds, 1e-9)
}

func TestAdvanceWrapsAroundE2E(t *testing.T) {
	resp, err := http.Post(server.URL+"/progressions", "application/json", nil)
	assert := assert.New(t)
	assert.NoError(err)
	created := decodeProgression(t, resp.Body)

	var advanced model.ProgressionResponse
	for range created.Chords {
		resp, err := http.Post(server.URL+"/progressions/"+created.Id+"/advance", "application/json", nil)
		assert.NoError(err)
		assert.Equal(200, resp.StatusCode)
		advanced = decodeProgression(t, resp.Body)
	}

	// a full cycle of advances lands back on the first chord
	assert.Equal(created.Chords[0], advanced.CurrentChord)

	getResp, err := http.Get(server.URL + "/progressions/" + created.Id)
	assert.NoError(err)
	assert.Equal(created.Chords[0], decodeProgression(t, getResp.Body).CurrentChord)
}

func TestUnknownProgressionE2E(t *testing.T) {
	resp, err := http.Get(server.URL + "/progressions/nope")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(404, resp.StatusCode)

	var errRes model.ErrorResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&errRes))
	assert.Contains(errRes.Error, "nope")
}
