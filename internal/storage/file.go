package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const slotsFileName = "slots.pb"

// FileKV stores all slots in one file as a serialized structpb.Struct. The
// whole file is rewritten on every Set.
type FileKV struct {
	path string
	mu   sync.Mutex
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileKV{path: filepath.Join(dir, slotsFileName)}, nil
}

func (f *FileKV) Path() string {
	return f.path
}

func (f *FileKV) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.readUnlocked()
	if err != nil {
		return "", err
	}

	v, ok := slots.GetFields()[key]
	if !ok {
		return "", ErrNotFound
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("slot %q is not a string", key)
	}
	return s.StringValue, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.readUnlocked()
	if err != nil {
		// A corrupt file is replaced rather than blocking every later write.
		slots = &structpb.Struct{}
	}
	if slots.Fields == nil {
		slots.Fields = make(map[string]*structpb.Value)
	}
	slots.Fields[key] = structpb.NewStringValue(value)

	data, err := proto.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to encode slots: %w", err)
	}
	return writeFileAtomic(f.path, data)
}

func (f *FileKV) readUnlocked() (*structpb.Struct, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &structpb.Struct{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slots: %w", err)
	}

	slots := &structpb.Struct{}
	if err := proto.Unmarshal(data, slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write slots: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write slots: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace slots: %w", err)
	}
	return nil
}
