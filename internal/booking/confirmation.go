package booking

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewConfirmationCode builds a DL-<timestamp36>-<random4> code. The
// time-derived prefix makes collisions unlikely, not impossible; global
// uniqueness is enforced by the unique index on the confirmation column,
// with generation retried on collision.
func NewConfirmationCode() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return "DL-" + ts + "-" + sb.String()
}
