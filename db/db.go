package db

import (
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/johnmpetty/progress/constants"
	"github.com/johnmpetty/progress/model"
)

const tableName = "progress-sessions"

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

// PutSession stores one practice session so history can show what was
// drilled.
func PutSession(s model.PracticeSession) {
	client := newClient()
	input := &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":        {S: aws.String(s.Id)},
			"StartedAt": {S: aws.String(s.StartedAt)},
			"Root":      {S: aws.String(s.Root)},
			"Scale":     {S: aws.String(s.Scale)},
			"Chords":    {S: aws.String(strings.Join(s.Chords, ", "))},
			"Bpm":       {N: aws.String(strconv.Itoa(s.Bpm))},
		},
	}
	if _, err := client.PutItem(input); err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}

// GetRecentSessions scans the session log. A scan is plenty for a personal
// practice history.
func GetRecentSessions(limit int64) []model.PracticeSession {
	client := newClient()
	input := &dynamodb.ScanInput{
		TableName: aws.String(tableName),
		Limit:     aws.Int64(limit),
	}
	res, err := client.Scan(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	var sessions []model.PracticeSession
	for _, v := range res.Items {
		var s model.PracticeSession
		s.Id = *v["PK"].S
		s.StartedAt = *v["StartedAt"].S
		s.Root = *v["Root"].S
		s.Scale = *v["Scale"].S
		if v["Chords"].S != nil {
			s.Chords = strings.Split(*v["Chords"].S, ", ")
		}
		if v["Bpm"].N != nil {
			bpm, _ := strconv.Atoi(*v["Bpm"].N)
			s.Bpm = bpm
		}
		sessions = append(sessions, s)
	}
	return sessions
}
