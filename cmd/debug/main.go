package main

import (
	"fmt"

	"jungle/internal/jungle"
)

func main() {
	b := jungle.NewBoard()
	fmt.Print(b.Diagram())
	fmt.Print(b.String())
	fmt.Println("notation:", b.Encode())
	fmt.Println("legal moves:", len(b.LegalMoves(b.Turn())))
}
