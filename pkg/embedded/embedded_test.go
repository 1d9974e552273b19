package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
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

	_, err := ReadFile("data/test.yaml")
	if err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试路径标准化与读取
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/loading_field.yaml": &fstest.MapFile{Data: []byte("reels:\n  count: 3\n")},
	})
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain", "data/loading_field.yaml", false},
		{"dot prefix", "./data/loading_field.yaml", false},
		{"unknown prefix", "assets/loading_field.yaml", true},
		{"missing", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(fstest.MapFS{
		"data/a.yaml": &fstest.MapFile{Data: []byte("x: 1")},
	})
	defer func() { initialized = false }()

	if !Exists("data/a.yaml") {
		t.Error("Exists(data/a.yaml) = false, want true")
	}
	if Exists("data/b.yaml") {
		t.Error("Exists(data/b.yaml) = true, want false")
	}
	if Exists("a.yaml") {
		t.Error("Exists(a.yaml) = true, want false for unknown prefix")
	}
}
