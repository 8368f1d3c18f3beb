package lettermask

import "math/rand/v2"

const uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// similarLetters maps each uppercase letter to letters that are easy to
// confuse with it when partially occluded.
var similarLetters = map[byte][]byte{
	'A': []byte("HRV"),
	'B': []byte("PRD"),
	'C': []byte("GOQ"),
	'D': []byte("OQB"),
	'E': []byte("FBP"),
	'F': []byte("EPT"),
	'G': []byte("COQ"),
	'H': []byte("AMN"),
	'I': []byte("JLT"),
	'J': []byte("ILU"),
	'K': []byte("RXY"),
	'L': []byte("IJT"),
	'M': []byte("NHW"),
	'N': []byte("MHU"),
	'O': []byte("CDQ"),
	'P': []byte("BRD"),
	'Q': []byte("OGD"),
	'R': []byte("PBK"),
	'S': []byte("ZEG"),
	'T': []byte("ILF"),
	'U': []byte("VYN"),
	'V': []byte("UYW"),
	'W': []byte("VMN"),
	'X': []byte("KYZ"),
	'Y': []byte("VUX"),
	'Z': []byte("SXN"),
}

// randomLetters returns n random uppercase letters.
func randomLetters(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = uppercase[rng.IntN(len(uppercase))]
	}
	return string(b)
}

// mutate returns a copy of s with one position replaced by a visually
// similar letter (or any other letter when no similar one is known).
func mutate(rng *rand.Rand, s string) string {
	b := []byte(s)
	pos := rng.IntN(len(b))
	letter := b[pos]

	repls := similarLetters[letter]
	if len(repls) == 0 {
		for {
			if r := uppercase[rng.IntN(len(uppercase))]; r != letter {
				repls = []byte{r}
				break
			}
		}
	}
	b[pos] = repls[rng.IntN(len(repls))]
	return string(b)
}
