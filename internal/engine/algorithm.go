package engine

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// contexts maps each algorithm to the constructor of its incremental digest.
var contexts = map[model.Algorithm]func() hash.Hash{
	model.MD5:    md5.New,
	model.SHA1:   sha1.New,
	model.SHA256: sha256.New,
	model.SHA512: sha512.New,
}

// newContext returns a fresh digest context for alg.
func newContext(alg model.Algorithm) (hash.Hash, error) {
	ctor, ok := contexts[alg]
	if !ok {
		return nil, errclass.ErrUsage.WithMessagef("unsupported algorithm %q: choose one of MD5, SHA1, SHA256, SHA512", string(alg))
	}
	return ctor(), nil
}
