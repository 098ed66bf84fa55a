package constants

import "os"

// BPMs are drawn from [BpmMin, BpmMax) stepping by BpmStep.
const BpmMin = 80
const BpmMax = 160
const BpmStep = 10

// Minimum number of chords in a generated progression.
const ProgressionLengthMin = 3

// Maximum number of chords in a generated progression.
const ProgressionLengthMax = 5

// How many quarter notes each chord is held during training.
const NotesPerMeasure = 8

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}
