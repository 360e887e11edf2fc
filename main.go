package main

import (
	"milimani.co.ke/backend/cmd/app"
)

func main() {
	app.Run()
}
