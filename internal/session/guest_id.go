package session

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
)

const (
	guestSuffixLen = 9
	base36         = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GuestIDGenerator mints guest-<unix millis>-<9 base36 chars> identifiers.
type GuestIDGenerator struct {
	clock  clockwork.Clock
	random io.Reader
}

func NewGuestIDGenerator(clock clockwork.Clock) *GuestIDGenerator {
	return &GuestIDGenerator{clock: clock, random: rand.Reader}
}

func (g *GuestIDGenerator) New() (string, error) {

	var sb strings.Builder
	sb.WriteString(GuestCartPrefix)
	sb.WriteString(strconv.FormatInt(g.clock.Now().UnixMilli(), 10))
	sb.WriteByte('-')

	limit := big.NewInt(int64(len(base36)))
	for range guestSuffixLen {
		n, err := rand.Int(g.random, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base36[n.Int64()])
	}

	return sb.String(), nil
}
