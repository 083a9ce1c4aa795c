package descriptor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/spritesqueeze/internal/pack"
)

// WriteTemplate expands tmpl against result: header once, then for each
// sprite (in input order) split (skipped before the first sprite) then
// body, then footer once.
func WriteTemplate(w io.Writer, result *pack.Result, tmpl Template) error {
	if tmpl.Header != "" {
		if err := writeExpanded(w, tmpl.Header, tmpl, result, nil); err != nil {
			return err
		}
	}

	for i := range result.Sprites {
		if i > 0 && tmpl.Split != "" {
			if err := writeExpanded(w, tmpl.Split, tmpl, result, &result.Sprites[i]); err != nil {
				return err
			}
		}
		if err := writeExpanded(w, tmpl.Body, tmpl, result, &result.Sprites[i]); err != nil {
			return err
		}
	}

	if tmpl.Footer != "" {
		if err := writeExpanded(w, tmpl.Footer, tmpl, result, nil); err != nil {
			return err
		}
	}

	return nil
}

func writeExpanded(w io.Writer, s string, tmpl Template, result *pack.Result, sprite *pack.SpriteEntry) error {
	expanded := expand(s, tmpl, result, sprite)
	if _, err := io.WriteString(w, expanded); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// expand walks s left to right, replacing %-specifiers and \-escapes.
// An unrecognized %X or \X emits the literal character X and warns.
func expand(s string, tmpl Template, result *pack.Result, sprite *pack.SpriteEntry) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '%' && c != '\\' {
			b.WriteRune(c)
			continue
		}
		if i+1 >= len(runes) {
			b.WriteRune(c)
			continue
		}
		next := runes[i+1]
		i++

		if c == '\\' {
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			default:
				tmpl.warnf("descriptor: unrecognized escape \\%c", next)
				b.WriteRune(next)
			}
			continue
		}

		// c == '%'
		switch next {
		case '%':
			b.WriteByte('%')
		case 'W':
			b.WriteString(strconv.Itoa(result.Width))
		case 'H':
			b.WriteString(strconv.Itoa(result.Height))
		case 'n':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return s.ShortName }))
		case 'w':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.TrimmedSize.W) }))
		case 'h':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.TrimmedSize.H) }))
		case 'x':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.Placement.Left) }))
		case 'y':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.Placement.Top) }))
		case 'l':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.Trim.OffsetLeft) }))
		case 't':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.Trim.OffsetTop) }))
		case 'c':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.Trim.OriginWidth) }))
		case 'r':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string { return strconv.Itoa(s.Trim.OriginHeight) }))
		case 'f':
			b.WriteString(spriteOrEmpty(sprite, func(s *pack.SpriteEntry) string {
				if s.Placement.Rotated {
					return "1"
				}
				return "0"
			}))
		default:
			tmpl.warnf("descriptor: unrecognized specifier %%%c", next)
			b.WriteRune(next)
		}
	}

	return b.String()
}

func spriteOrEmpty(sprite *pack.SpriteEntry, f func(*pack.SpriteEntry) string) string {
	if sprite == nil {
		return ""
	}
	return f(sprite)
}
