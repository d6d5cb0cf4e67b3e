package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Coin is a discrete token minted into a cache. Its value never changes
// after minting.
type Coin struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

// CoinID encodes the minting cell and serial as "i:j#serial".
func CoinID(cell Cell, serial int) string {
	return strconv.Itoa(cell.I) + ":" + strconv.Itoa(cell.J) + "#" + strconv.Itoa(serial)
}

// ParseCoinID decodes an id produced by CoinID.
func ParseCoinID(id string) (Cell, int, error) {
	coords, serialStr, ok := strings.Cut(id, "#")
	if !ok {
		return Cell{}, 0, zerr.With(ErrInvalidCoinID, "coin_id", id)
	}
	iStr, jStr, ok := strings.Cut(coords, ":")
	if !ok {
		return Cell{}, 0, zerr.With(ErrInvalidCoinID, "coin_id", id)
	}
	i, errI := strconv.Atoi(iStr)
	j, errJ := strconv.Atoi(jStr)
	serial, errS := strconv.Atoi(serialStr)
	if errI != nil || errJ != nil || errS != nil || serial < 0 {
		return Cell{}, 0, zerr.With(ErrInvalidCoinID, "coin_id", id)
	}
	return Cell{I: i, J: j}, serial, nil
}

// TotalValue sums the values of coins.
func TotalValue(coins []Coin) int {
	total := 0
	for _, c := range coins {
		total += c.Value
	}
	return total
}
