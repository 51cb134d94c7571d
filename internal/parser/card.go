package parser

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultCardGroupCols = 2
	defaultColumnsCols   = 3
)

var (
	cardGroupOpenRegex = regexp.MustCompile(`^<CardGroup(?:\s+cols=\{?(\d+)\}?)?\s*>`)
	columnsOpenRegex   = regexp.MustCompile(`^<Columns(?:\s+cols=\{?(\d+)\}?)?\s*>`)
	selfClosingCard    = regexp.MustCompile(`(?s)^<Card\s+(?:title="([^"]*)")?\s*(?:icon="([^"]*)")?\s*(?:href="([^"]*)")?\s*/>`)
)

func parseCardGroup(content string) (DocNode, string, bool) {
	return parseCardContainer(content, "CardGroup", cardGroupOpenRegex, defaultCardGroupCols)
}

func parseColumns(content string) (DocNode, string, bool) {
	return parseCardContainer(content, "Columns", columnsOpenRegex, defaultColumnsCols)
}

func parseCardContainer(content, tag string, open *regexp.Regexp, defaultCols int) (DocNode, string, bool) {
	m := open.FindStringSubmatch(content)
	if m == nil {
		return nil, "", false
	}

	cols := defaultCols
	if m[1] != "" {
		if n, err := strconv.Atoi(m[1]); err == nil {
			cols = n
		}
	}

	inner, rest, ok := takeElement(content[len(m[0]):], tag)
	if !ok {
		return nil, "", false
	}

	return CardGroup{Cols: cols, Cards: parseCards(inner)}, rest, true
}

// parseStandaloneCard handles a <Card> outside of any group.
func parseStandaloneCard(content string) (DocNode, string, bool) {
	if !strings.HasPrefix(content, "<Card") {
		return nil, "", false
	}

	card, rest, ok := parseSingleCard(content)
	if !ok {
		return nil, "", false
	}
	return card, rest, true
}

// parseCards collects the cards inside a group, skipping anything else.
func parseCards(content string) []Card {
	var cards []Card
	remaining := strings.TrimSpace(content)

	for remaining != "" {
		if m := selfClosingCard.FindStringSubmatch(remaining); m != nil {
			cards = append(cards, Card{Title: m[1], Icon: m[2], Href: m[3]})
			remaining = strings.TrimSpace(remaining[len(m[0]):])
			continue
		}

		if strings.HasPrefix(remaining, "<Card") {
			if card, rest, ok := parseSingleCard(remaining); ok {
				cards = append(cards, card)
				remaining = strings.TrimSpace(rest)
				continue
			}
		}

		idx := strings.Index(remaining[1:], "<Card")
		if idx == -1 {
			break
		}
		remaining = remaining[idx+1:]
	}

	return cards
}

// parseSingleCard reads one self-closing or block <Card>. The body of a block
// card is raw text.
func parseSingleCard(content string) (Card, string, bool) {
	attrs, selfClosing, body, ok := splitOpenTag(content, "Card")
	if !ok {
		return Card{}, "", false
	}

	card := Card{
		Title: attrOr(attrs, "title", ""),
		Icon:  attrOr(attrs, "icon", ""),
		Href:  attrOr(attrs, "href", ""),
	}
	if selfClosing {
		return card, body, true
	}

	inner, rest, ok := takeElement(body, "Card")
	if !ok {
		return Card{}, "", false
	}
	card.Content = strings.TrimSpace(inner)
	return card, rest, true
}
