package rimage

import "errors"

// ErrDecode wraps a PNG codec failure while reading a sprite.
var ErrDecode = errors.New("decode error")

// ErrEncode wraps a PNG codec failure while writing the atlas.
var ErrEncode = errors.New("encode error")
