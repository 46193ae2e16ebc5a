package markup

// Bullet is the canonical bullet prefix added to bulleted lines.
const Bullet = "• "

// legacyBullet is the dash prefix recognized for backward compatibility
// with notes written before the canonical bullet was adopted.
const legacyBullet = "- "

// Scheme describes the bullet conventions a buffer uses. The inline
// marker pairs are fixed; only bullet recognition varies. A Scheme is an
// explicit value passed to the operations that need it, so there is no
// process-wide markup state.
type Scheme struct {
	// Bullet is the prefix added when bulleting lines.
	Bullet string

	// LegacyBullets are additional prefixes recognized (and stripped)
	// as bullets, but never added.
	LegacyBullets []string
}

// DefaultScheme returns the standard scheme: "• " bullets with "- "
// recognized as a legacy bullet.
func DefaultScheme() Scheme {
	return Scheme{
		Bullet:        Bullet,
		LegacyBullets: []string{legacyBullet},
	}
}

// IsBulleted returns true if the line begins with the canonical bullet or
// any legacy bullet prefix.
func (s Scheme) IsBulleted(line string) bool {
	_, ok := s.bulletPrefix(line)
	return ok
}

// bulletPrefix returns the bullet prefix the line begins with, if any.
func (s Scheme) bulletPrefix(line string) (string, bool) {
	if len(s.Bullet) > 0 && len(line) >= len(s.Bullet) && line[:len(s.Bullet)] == s.Bullet {
		return s.Bullet, true
	}
	for _, p := range s.LegacyBullets {
		if len(p) > 0 && len(line) >= len(p) && line[:len(p)] == p {
			return p, true
		}
	}
	return "", false
}
