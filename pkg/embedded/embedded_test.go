package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	// 重置状态
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/gameplay.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFileAndExists(t *testing.T) {
	Init(fstest.MapFS{
		"data/gameplay.yaml": &fstest.MapFile{Data: []byte("health:\n  initial: 20\n")},
	})
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "plain path", path: "data/gameplay.yaml"},
		{name: "dot prefix", path: "./data/gameplay.yaml"},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
		{name: "wrong prefix", path: "assets/gameplay.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected file content")
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, !tt.wantErr, tt.wantErr)
			}
		})
	}
}
