package stocksim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"
)

// This file contains code to persist a portfolio as a single, human-readable JSON document:
//
//	{
//	    "balance": 6000,
//	    "value currently invested": 1064.69,
//	    "portfolio": [
//	        {"symbol": "AAPL", "stock price current": 532.34, ...}
//	    ]
//	}
//
// Saving always rewrites the whole document. Loading always builds a new Portfolio, so a
// failed load never alters the portfolio currently in use.

const indent = "    "

// document keys.
const (
	keyBalance   = "balance"
	keyInvested  = "value currently invested"
	keyPositions = "portfolio"

	keySymbol        = "symbol"
	keyPrice         = "stock price current"
	keyPreviousPrice = "stock price previous"
	keyWorth         = "current investment worth"
	keyInitial       = "initial investment"
	keyShares        = "shares bought"
	keyDays          = "days to invest"
	keyRisk          = "risk"
	keyCap           = "market cap"
)

// valueTolerance is the drift accepted between the persisted invested value and the sum of the positions.
const valueTolerance = 1e-6

func (p *Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(keySymbol, p.symbol)
	w.Append(keyPrice, p.price)
	w.Append(keyPreviousPrice, p.previousPrice)
	w.Append(keyWorth, p.invested)
	w.Append(keyInitial, p.initial)
	w.Append(keyShares, p.shares)
	w.Append(keyDays, p.days)
	w.Append(keyRisk, p.risk)
	w.Append(keyCap, p.cap)
	return w.MarshalJSON()
}

func (p *Portfolio) MarshalJSON() ([]byte, error) {
	positions := p.positions
	if positions == nil {
		positions = []*Position{} // an empty portfolio is [] not null
	}
	var w jsonObjectWriter
	w.Append(keyBalance, p.balance)
	w.Append(keyInvested, p.invested)
	w.Append(keyPositions, positions)
	return w.MarshalJSON()
}

// jposition is the object read from the document using json parser.
// Pointers tell missing properties apart from zero values.
type jposition struct {
	Symbol        *string  `json:"symbol"`
	Price         *float64 `json:"stock price current"`
	PreviousPrice *float64 `json:"stock price previous"`
	Worth         *float64 `json:"current investment worth"`
	Initial       *float64 `json:"initial investment"`
	Shares        *float64 `json:"shares bought"`
	Days          *int     `json:"days to invest"`
	Risk          *int     `json:"risk"`
	Cap           *float64 `json:"market cap"`
}

type jportfolio struct {
	Balance   *float64     `json:"balance"`
	Invested  *float64     `json:"value currently invested"`
	Positions []*jposition `json:"portfolio"`
}

// Encode writes the portfolio document to w.
func Encode(w io.Writer, p *Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: cannot encode portfolio: %w", ErrIO, err)
	}
	var b bytes.Buffer
	if err := json.Indent(&b, raw, "", indent); err != nil {
		return fmt.Errorf("%w: cannot encode portfolio: %w", ErrIO, err)
	}
	b.WriteByte('\n')
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("%w: cannot write portfolio: %w", ErrIO, err)
	}
	return nil
}

// Decode reads a portfolio document from r.
//
// Every position field is checked with the same rules as the Position
// setters, except that an unset symbol is accepted.
func Decode(r io.Reader) (*Portfolio, error) {
	var jp jportfolio
	if err := json.NewDecoder(r).Decode(&jp); err != nil {
		return nil, fmt.Errorf("%w: format error: %w", ErrIO, err)
	}
	if jp.Balance == nil {
		return nil, fmt.Errorf("%w: format error: missing the property %q", ErrIO, keyBalance)
	}
	if jp.Invested == nil {
		return nil, fmt.Errorf("%w: format error: missing the property %q", ErrIO, keyInvested)
	}
	if jp.Positions == nil {
		return nil, fmt.Errorf("%w: format error: missing the property %q", ErrIO, keyPositions)
	}

	p := &Portfolio{balance: *jp.Balance}
	for i, js := range jp.Positions {
		pos, err := decodePosition(js)
		if err != nil {
			return nil, fmt.Errorf("%w: format error in %q[%d]: %w", ErrIO, keyPositions, i, err)
		}
		p.AddPosition(pos)
	}

	p.UpdateValue()
	if math.Abs(p.invested-*jp.Invested) > valueTolerance {
		log.Warn().
			Float64("persisted", *jp.Invested).
			Float64("computed", p.invested).
			Msg("invested value does not match the positions, using the positions")
	}
	return p, nil
}

// decodePosition builds a position out of its json proxy.
func decodePosition(js *jposition) (*Position, error) {
	if js == nil {
		return nil, fmt.Errorf("null position")
	}
	missing := func(key string) error { return fmt.Errorf("missing the property %q", key) }
	switch {
	case js.Symbol == nil:
		return nil, missing(keySymbol)
	case js.Price == nil:
		return nil, missing(keyPrice)
	case js.PreviousPrice == nil:
		return nil, missing(keyPreviousPrice)
	case js.Worth == nil:
		return nil, missing(keyWorth)
	case js.Initial == nil:
		return nil, missing(keyInitial)
	case js.Shares == nil:
		return nil, missing(keyShares)
	case js.Days == nil:
		return nil, missing(keyDays)
	case js.Risk == nil:
		return nil, missing(keyRisk)
	case js.Cap == nil:
		return nil, missing(keyCap)
	}

	pos := NewPosition()
	if *js.Symbol != "" {
		if err := pos.SetSymbol(*js.Symbol); err != nil {
			return nil, err
		}
	}
	if err := pos.SetPrice(*js.Price); err != nil {
		return nil, err
	}
	if err := pos.SetInvested(*js.Worth); err != nil {
		return nil, err
	}
	if err := pos.SetDays(*js.Days); err != nil {
		return nil, err
	}
	if err := pos.SetRisk(*js.Risk); err != nil {
		return nil, err
	}
	if err := pos.SetCap(*js.Cap); err != nil {
		return nil, err
	}
	if err := checkAmount("initial investment", *js.Initial); err != nil {
		return nil, err
	}
	pos.SetPreviousPrice(*js.PreviousPrice)
	pos.initial = *js.Initial
	pos.shares = *js.Shares
	return pos, nil
}

// Save writes the portfolio document to filename, replacing any previous content.
func Save(filename string, p *Portfolio) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: cannot create folder %q: %w", ErrIO, dir, err)
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: cannot open %q for writing: %w", ErrIO, filename, err)
	}
	defer f.Close()

	if err := Encode(f, p); err != nil {
		return fmt.Errorf("cannot save %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cannot save %q: %w", ErrIO, filename, err)
	}
	return nil
}

// Load reads the portfolio document from filename.
func Load(filename string) (*Portfolio, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q for reading: %w", ErrIO, filename, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", filename, err)
	}
	return p, nil
}

// Query evaluates a JSONPath expression (e.g. "$.portfolio[*].symbol") against a portfolio document.
func Query(r io.Reader, expr string) (any, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("%w: format error: %w", ErrIO, err)
	}
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return jval, nil
}
