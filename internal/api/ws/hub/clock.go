package hub

import "time"

// Clock, soru zamanlayıcılarını testte elle tetikleyebilmek için zamanı
// soyutlar.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

func NewRealClock() Clock { return realClock{} }
