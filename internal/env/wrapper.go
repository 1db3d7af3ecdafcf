package env

import (
	"io"
	"os"
)

// EnvWrapper forwards every Env operation to a wrapped Env. Embed it to
// override a handful of methods while delegating the rest, e.g. a test
// harness that intercepts Create but leaves everything else at the default
// host-OS behavior.
type EnvWrapper struct {
	Target Env
}

// NewEnvWrapper wraps target, forwarding all operations to it by default.
func NewEnvWrapper(target Env) *EnvWrapper {
	return &EnvWrapper{Target: target}
}

func (w *EnvWrapper) Create(name string) (WritableFile, error) {
	return w.Target.Create(name)
}

func (w *EnvWrapper) Open(name string) (SequentialFile, error) {
	return w.Target.Open(name)
}

func (w *EnvWrapper) OpenRandomAccess(name string) (RandomAccessFile, error) {
	return w.Target.OpenRandomAccess(name)
}

func (w *EnvWrapper) Rename(oldname, newname string) error {
	return w.Target.Rename(oldname, newname)
}

func (w *EnvWrapper) Remove(name string) error {
	return w.Target.Remove(name)
}

func (w *EnvWrapper) RemoveAll(path string) error {
	return w.Target.RemoveAll(path)
}

func (w *EnvWrapper) MkdirAll(path string, perm os.FileMode) error {
	return w.Target.MkdirAll(path, perm)
}

func (w *EnvWrapper) Stat(name string) (os.FileInfo, error) {
	return w.Target.Stat(name)
}

func (w *EnvWrapper) Exists(name string) bool {
	return w.Target.Exists(name)
}

func (w *EnvWrapper) ListDir(path string) ([]string, error) {
	return w.Target.ListDir(path)
}

func (w *EnvWrapper) Lock(name string) (io.Closer, error) {
	return w.Target.Lock(name)
}

func (w *EnvWrapper) SyncDir(path string) error {
	return w.Target.SyncDir(path)
}

func (w *EnvWrapper) Schedule(fn func()) {
	w.Target.Schedule(fn)
}

func (w *EnvWrapper) StartThread(fn func()) {
	w.Target.StartThread(fn)
}

func (w *EnvWrapper) NowMicros() int64 {
	return w.Target.NowMicros()
}

func (w *EnvWrapper) SleepForMicroseconds(micros int64) {
	w.Target.SleepForMicroseconds(micros)
}
