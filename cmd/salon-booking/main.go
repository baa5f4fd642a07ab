package main

import "github.com/m04kA/SMC-SalonBooking/cmd"

func main() {
	cmd.Execute()
}
