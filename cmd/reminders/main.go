// Command reminders runs one reminder sweep and exits. It is meant to be
// scheduled by cron against the same environment as the server.
package main

import "github.com/adanyl0v/go-team-tasks/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitStorage()
	defer app.CloseStorage()

	app.MustInitServices()
	app.MustSweepReminders()
}
