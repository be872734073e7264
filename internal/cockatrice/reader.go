// Package cockatrice reads Cockatrice card database XML exports.
package cockatrice

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterkuimelis/forgec/internal/card"
)

// xmlCard mirrors one <card> element. Newer exports nest most properties
// under <prop>; loyalty lives on the card element.
type xmlCard struct {
	Name     string    `xml:"name"`
	Text     string    `xml:"text"`
	Loyalty  string    `xml:"loyalty"`
	Token    *struct{} `xml:"token"`
	ManaCost string    `xml:"prop>manacost"`
	Type     string    `xml:"prop>type"`
	PT       string    `xml:"prop>pt"`
}

type database struct {
	XMLName xml.Name  `xml:"cockatrice_carddatabase"`
	Cards   []xmlCard `xml:"cards>card"`
}

// Read decodes a card database from r. A document that does not parse is a
// fatal error for the whole run; per-card field validation is the caller's
// concern.
func Read(r io.Reader) ([]card.Card, error) {
	var db database
	if err := xml.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("decode card database: %w", err)
	}

	cards := make([]card.Card, 0, len(db.Cards))
	for _, c := range db.Cards {
		cards = append(cards, card.Card{
			Name:     strings.TrimSpace(c.Name),
			ManaCost: strings.TrimSpace(c.ManaCost),
			Type:     strings.TrimSpace(c.Type),
			PT:       strings.TrimSpace(c.PT),
			Loyalty:  strings.TrimSpace(c.Loyalty),
			Text:     strings.TrimSpace(c.Text),
			IsToken:  c.Token != nil,
		})
	}
	return cards, nil
}

// ReadFile reads a card database from path.
func ReadFile(path string) ([]card.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card database: %w", err)
	}
	defer f.Close()
	return Read(f)
}
