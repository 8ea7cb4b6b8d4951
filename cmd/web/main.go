// @title           Photo Shoot Booking API
// @version         1.0
// @description     CRUD API for photo shoots, look books, schedules, payments and picture uploads.
// @host            localhost:8080
// @BasePath        /

package main

import "photoshoot_backend/internal/app"

//go:generate swag init -g cmd/web/main.go -d ../.. -o ../../docs --parseInternal

func main() {
	app.Run()
}
