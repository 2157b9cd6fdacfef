package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"hexcrawl-server/pkg/utils"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "new":
		fmt.Println(time.Now().UnixNano())
	case "from":
		if len(os.Args) < 3 {
			fmt.Println("Usage: seedutil from <string>")
			return
		}
		fmt.Println(utils.StringToSeed(os.Args[2]))
	case "level":
		if len(os.Args) < 4 {
			fmt.Println("Usage: seedutil level <seed> <level>")
			return
		}
		seed, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid seed: %v\n", err)
			return
		}
		level, err := strconv.Atoi(os.Args[3])
		if err != nil {
			fmt.Printf("Invalid level: %v\n", err)
			return
		}
		// Та же формула, что у движка: сид яруса = сид мира + номер яруса.
		fmt.Println(seed + int64(level))
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Seed Utility - работа с сидами мира
Commands:
  new                 - сгенерировать свежий сид
  from <string>       - детерминированно получить сид из строки
  level <seed> <lvl>  - вычислить сид конкретного яруса`)
}
