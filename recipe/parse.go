package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

const storeListMarker = "Store List:"

var (
	blankLines        = regexp.MustCompile(`\r?\n(?:\r?\n)+`)
	lineBreak         = regexp.MustCompile(`\r?\n`)
	recipeHeader      = regexp.MustCompile(`(?i)^Recipe[ \t]+(\d+):[ \t]*(.+)$`)
	ingredientsHeader = regexp.MustCompile(`(?i)^Ingredients:`)
	storeLine         = regexp.MustCompile(`(?i)^(.+?):[ \t]*(.+?),[ \t]*aisle[ \t]*(.+)$`)
)

// Parsed is the result of reading a recipe file.
type Parsed struct {
	Recipes   []Recipe  `json:"recipes"`
	StoreList StoreList `json:"store_list"`
	// Skipped counts blocks that were dropped: unrecognized blocks and a trailing recipe
	// header or store list marker with no block after it.
	Skipped int `json:"skipped"`
}

type parseState int

const (
	expectingBlock parseState = iota
	expectingStoreListBody
	expectingIngredientsBody
)

type header struct {
	number int
	name   string
}

type parser struct {
	state   parseState
	pending header
	out     Parsed
}

// Parse splits text into recipes and an optional store list. Parsing is best effort:
// malformed blocks and store list lines are dropped and never fail the whole parse.
func Parse(text string) Parsed {
	p := &parser{
		out: Parsed{
			Recipes:   make([]Recipe, 0),
			StoreList: StoreList{},
		},
	}
	for _, block := range splitBlocks(text) {
		p.feed(block)
	}
	if p.state != expectingBlock {
		p.out.Skipped++
	}
	return p.out
}

func splitBlocks(text string) []string {
	var blocks []string
	for _, b := range blankLines.Split(text, -1) {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// feed consumes one block. The block after a marker or header is always its body,
// whatever it contains.
func (p *parser) feed(block string) {
	switch p.state {
	case expectingStoreListBody:
		p.readStoreList(block)
		p.state = expectingBlock

	case expectingIngredientsBody:
		p.out.Recipes = append(p.out.Recipes, Recipe{
			Number:      p.pending.number,
			Name:        p.pending.name,
			Ingredients: readIngredients(block),
		})
		p.state = expectingBlock

	default:
		if isStoreListMarker(block) {
			p.state = expectingStoreListBody
			return
		}
		if m := recipeHeader.FindStringSubmatch(block); m != nil {
			n, _ := strconv.Atoi(m[1])
			p.pending = header{number: n, name: strings.TrimSpace(m[2])}
			p.state = expectingIngredientsBody
			return
		}
		p.out.Skipped++
	}
}

func (p *parser) readStoreList(block string) {
	for _, line := range lineBreak.Split(block, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := storeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		p.out.StoreList[Normalize(m[1])] = StoreEntry{
			Store: strings.TrimSpace(m[2]),
			Aisle: strings.TrimSpace(m[3]),
		}
	}
}

func readIngredients(block string) []string {
	var lines []string
	for _, line := range lineBreak.Split(block, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 0 && ingredientsHeader.MatchString(lines[0]) {
		lines = lines[1:]
	}

	ingredients := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, "-") {
			continue
		}
		ingredients = append(ingredients, strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "-"))))
	}
	return ingredients
}

func isStoreListMarker(block string) bool {
	return strings.HasPrefix(block, storeListMarker)
}
