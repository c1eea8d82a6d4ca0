package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/weekplan/weekplan-lambda/internal/container"
	"github.com/weekplan/weekplan-lambda/internal/router"
)

func buildHandler() http.Handler {
	c := container.New()

	return router.New(router.RouterConfig{
		EventHandler: c.EventContainer.Handler,
		GoalHandler:  c.GoalContainer.Handler,
		TaskHandler:  c.TaskContainer.Handler,
	})
}

func main() {
	handler := buildHandler()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
