package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/ibeloyar/bcproxy/internal/app"
	"github.com/ibeloyar/bcproxy/internal/config"
	"github.com/ibeloyar/bcproxy/pgk/logger"

	lambdaController "github.com/ibeloyar/bcproxy/internal/controller/lambda"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		lg.Fatal(err)
	}

	a, err := app.New(cfg, lg)
	if err != nil {
		lg.Fatal(err)
	}
	defer a.Close()

	lambda.Start(lambdaController.New(a.Router, cfg.FunctionPathPrefix).Handle)
}
