package main

import "donation-registry-api/app"

func main() {
	app.Run()
}
