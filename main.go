package main

import "github.com/rpspoonia/project-management-system/internal/app"

func main() {
	app.Run()
}
