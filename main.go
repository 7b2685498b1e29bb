package main

import (
	"letterChat/cmd/app"
)

// @title           Letter Chat API
// @version         1.0
// @description     Delayed-delivery pen pal letter exchange.

// @host      localhost:8000
// @BasePath  /
func main() {
	app.GetApp().LetsGo()
}
