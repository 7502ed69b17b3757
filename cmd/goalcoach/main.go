package main

import "github.com/financialpeak/goalcoach/internal/app"

func main() {
	err := app.NewGoalCoachApp().Run()
	if err != nil {
		panic(err)
	}
}
