// cmd/linkfolio/main.go
package main

import (
	"context"
	"log"

	"github.com/dalemusser/linkfolio/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("linkfolio: %v", err)
	}
}
