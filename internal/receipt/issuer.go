package receipt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	suffixLength = 9
	maxAttempts  = 8
)

// ErrExhausted is returned when the issuer cannot find an unused reference.
var ErrExhausted = errors.New("no unused reference code available")

// suffixSpace is 36^9, the number of distinct base-36 suffixes.
var suffixSpace = new(big.Int).Exp(big.NewInt(36), big.NewInt(suffixLength), nil)

// Notice is the short message shown to the visitor right after submitting.
type Notice struct {
	Title   string
	Message string
}

// Receipt is an issued confirmation. Its Reference never changes once issued.
type Receipt struct {
	Service     string
	Title       string
	Reference   string
	NextSteps   []string
	Explanation string
	Notice      Notice
	IssuedAt    time.Time
}

// Issuer assigns reference codes. It is the only source of references in the
// process and never hands out the same code twice.
type Issuer struct {
	mu     sync.Mutex
	issued map[string]struct{}
	random io.Reader
	now    func() time.Time
}

// NewIssuer creates an issuer backed by crypto/rand.
func NewIssuer() *Issuer {
	return &Issuer{
		issued: make(map[string]struct{}),
		random: rand.Reader,
		now:    time.Now,
	}
}

// Issue creates the receipt for service with a fresh reference code of the
// form PREFIX-YEAR-XXXXXXXXX.
func (i *Issuer) Issue(service string) (Receipt, error) {
	content := Lookup(service)
	issuedAt := i.now()

	i.mu.Lock()
	defer i.mu.Unlock()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		suffix, err := i.suffix()
		if err != nil {
			return Receipt{}, fmt.Errorf("generate reference: %w", err)
		}

		ref := fmt.Sprintf("%s-%d-%s", content.Prefix, issuedAt.Year(), suffix)
		if _, taken := i.issued[ref]; taken {
			continue
		}
		i.issued[ref] = struct{}{}

		return Receipt{
			Service:     service,
			Title:       content.Title,
			Reference:   ref,
			NextSteps:   content.NextSteps,
			Explanation: content.Explanation,
			Notice: Notice{
				Title:   content.NoticeTitle,
				Message: content.NoticeText + " Reference: " + ref,
			},
			IssuedAt: issuedAt,
		}, nil
	}

	return Receipt{}, ErrExhausted
}

// Issued returns the number of references handed out so far.
func (i *Issuer) Issued() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.issued)
}

func (i *Issuer) suffix() (string, error) {
	n, err := rand.Int(i.random, suffixSpace)
	if err != nil {
		return "", err
	}
	s := strings.ToUpper(strconv.FormatInt(n.Int64(), 36))
	return strings.Repeat("0", suffixLength-len(s)) + s, nil
}
