package log

import (
	"fmt"
	"sync"

	"gopkg.in/Sirupsen/logrus.v0"
)

const maxZFields = 12

// EntryZ is a structured log entry built field by field and emitted by End.
// All methods accept a nil receiver, which is what disabled modules return,
// so a disabled log call never allocates. Fields past maxZFields are
// dropped.
type EntryZ struct {
	lvl    Level
	mod    Module
	msg    string
	fields [maxZFields]ZField
	n      int
}

var entryzPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func newEntryZ(mod Module, lvl Level, msg string) *EntryZ {
	z := entryzPool.Get().(*EntryZ)
	z.mod, z.lvl, z.msg, z.n = mod, lvl, msg, 0
	return z
}

func (z *EntryZ) add(f ZField) *EntryZ {
	if z == nil {
		return nil
	}
	if z.n < len(z.fields) {
		z.fields[z.n] = f
		z.n++
	}
	return z
}

func (z *EntryZ) String(key, s string) *EntryZ {
	return z.add(ZField{Key: key, kind: kindString, str: s})
}

func (z *EntryZ) Bool(key string, b bool) *EntryZ {
	f := ZField{Key: key, kind: kindBool}
	if b {
		f.num = 1
	}
	return z.add(f)
}

func (z *EntryZ) Int(key string, v int) *EntryZ {
	return z.add(ZField{Key: key, kind: kindInt, num: uint64(v)})
}

func (z *EntryZ) Int64(key string, v int64) *EntryZ {
	return z.add(ZField{Key: key, kind: kindInt, num: uint64(v)})
}

func (z *EntryZ) Uint16(key string, v uint16) *EntryZ {
	return z.add(ZField{Key: key, kind: kindUint, num: uint64(v)})
}

func (z *EntryZ) Hex8(key string, v uint8) *EntryZ {
	return z.add(ZField{Key: key, kind: kindHex, width: 2, num: uint64(v)})
}

func (z *EntryZ) Hex16(key string, v uint16) *EntryZ {
	return z.add(ZField{Key: key, kind: kindHex, width: 4, num: uint64(v)})
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	return z.add(ZField{Key: key, kind: kindError, obj: err})
}

func (z *EntryZ) Stringer(key string, s fmt.Stringer) *EntryZ {
	return z.add(ZField{Key: key, kind: kindStringer, obj: s})
}

func (z *EntryZ) Blob(key string, buf []byte) *EntryZ {
	return z.add(ZField{Key: key, kind: kindBlob, obj: buf})
}

// End emits the entry and puts it back in the pool. The entry must not be
// used afterwards.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	fields := make(logrus.Fields, z.n+1)
	fields[modField] = z.mod.String()
	for i := range z.fields[:z.n] {
		fields[z.fields[i].Key] = z.fields[i].Value()
	}
	lvl, msg := z.lvl, z.msg

	clear(z.fields[:z.n])
	entryzPool.Put(z)

	emit(logrus.StandardLogger().WithFields(fields), lvl, msg)
}
