package main

import "github.com/adanyl0v/go-team-tasks/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitStorage()
	defer app.CloseStorage()

	app.MustInitServices()
	app.MustSeedAdmin()

	app.MustListenAndServeHTTP()
}
