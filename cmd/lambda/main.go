// Command lambda runs the backend as an AWS Lambda function behind an API
// Gateway HTTP API or a function URL. Lambda sets AWS_LAMBDA_FUNCTION_NAME,
// so all logs go to stdout as JSON.
package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aibackend/internal/config"
	"aibackend/internal/server"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	srv, err := server.Bootstrap(config.Load())
	if err != nil {
		log.Fatal().Err(err).Msg("Logging setup failed")
	}

	lambda.Start(newAdapter(srv.Handler()).ProxyWithContext)
}

// newAdapter translates payload v2 events (HTTP API, function URLs) for h.
func newAdapter(h http.Handler) *httpadapter.HandlerAdapterV2 {
	return httpadapter.NewV2(h)
}
