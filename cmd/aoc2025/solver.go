package main

import "github.com/lkrol/aoc2025"

type solver struct {
	*aoc.Puzzle
}

var titles = map[int]string{
	1: "Secret Entrance",
	2: "Gift Shop",
	3: "Lobby",
	4: "Printing Department",
	5: "Cafeteria",
	6: "Trash Compactor",
}

func (solver) Title(day int) string {
	return titles[day]
}

var labels = map[string]string{
	"D1p1": "The password is",
	"D1p2": "The password for step 2 is",
	"D2p1": "The sum of all invalid IDs for 2 repetitions is",
	"D2p2": "The sum of all invalid IDs for all possible repetitions is",
	"D3p1": "Max possible voltage",
	"D3p2": "Max possible voltage with safety override",
	"D4p1": "Accessible rolls (first step)",
	"D4p2": "Accessible rolls (repeated)",
	"D5p1": "Available fresh ingredients",
	"D5p2": "All fresh ingredients",
	"D6p1": "Total",
	"D6p2": "Total (part 2)",
}

func (solver) Label(name string) string {
	return labels[name]
}
