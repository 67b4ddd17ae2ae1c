// Package words provides the built-in practice dictionary and word list loading.
package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// baseText is a compact dictionary of common English words. Entries are
// lowercase so plain sessions never require the shift key.
const baseText = `
the of and to in is you that it he was for on are as with his they i at
be this have from or one had by word but not what all were we when your
can said there use an each which she do how their if will up other about
out many then them these so some her would make like him into time has
look two more write go see number no way could people my than first
water been call who oil its now find long down day did get come made may
part over new sound take only little work know place year live me back
give most very after thing our just name good sentence man think say
great where help through much before line right too means old any same
tell boy follow came want show also around form three small set put end
does another well large must big even such because turn here why ask
went men read need land different home us move try kind hand picture
again change off play spell air away animal house point page letter
mother answer found study still learn should america world high every
near add food between own below country plant last school father keep
tree never start city earth eye light thought head under story saw left
don't few while along might close something seem next hard open example
begin life always those both paper together got group often run
important until children side feet car mile night walk white sea began
grow took river four carry state once book hear stop without second late
miss idea enough eat face watch far indian real almost let above girl
sometimes mountain cut young talk soon list song being leave family it's
body music color stand sun questions fish area mark dog horse birds
problem complete room knew since ever piece told usually didn't friends
easy heard order red door sure become top ship across today during short
better best however low hours black products happened whole measure
remember early waves reached listen wind rock space covered fast several
hold himself toward five step morning passed vowel true hundred against
pattern numeral table north slowly money map farm pulled draw voice seen
cold cried plan notice south sing war ground fall king town i'll unit
figure certain field travel wood fire upon done english road halt ten
fly gave box finally waited correct oh quickly person became shown
minutes
`

var base = strings.Fields(baseText)

// Base returns a copy of the built-in dictionary.
func Base() []string {
	out := make([]string, len(base))
	copy(out, base)
	return out
}

// Digits returns the numeric tokens mixed in when numbers are enabled.
func Digits() []string {
	return strings.Fields("0 1 2 3 4 5 6 7 8 9")
}

// Punctuation returns the symbol tokens mixed in when punctuation is enabled.
func Punctuation() []string {
	return strings.Fields(`, . ! ? : ; ' " - ( ) [ ] { } / \`)
}

// Pool combines a dictionary with the optional token sets.
func Pool(dict []string, numbers, punctuation bool) []string {
	pool := make([]string, 0, len(dict)+20)
	pool = append(pool, dict...)
	if numbers {
		pool = append(pool, Digits()...)
	}
	if punctuation {
		pool = append(pool, Punctuation()...)
	}
	return pool
}

// Load reads a custom word list from path, one entry per line. Entries are
// lowercased and blank lines are skipped.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		for _, w := range strings.Fields(scanner.Text()) {
			out = append(out, strings.ToLower(w))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return out, nil
}
