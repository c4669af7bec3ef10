package utils

import (
	"reflect"
	"testing"
)

func TestChunkStrings(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}

	got := ChunkStrings(keys, 2)
	want := [][]string{{"a", "b"}, {"c", "d"}, {"e"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ChunkStrings(keys, 2) = %v, want %v", got, want)
	}
}

func TestChunkStringsExactFit(t *testing.T) {
	got := ChunkStrings([]string{"a", "b", "c", "d"}, 2)
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 2 {
		t.Fatalf("expected two full chunks, got %v", got)
	}
}

func TestChunkStringsSingleOversizedChunk(t *testing.T) {
	keys := []string{"a", "b", "c"}

	got := ChunkStrings(keys, 0)
	if !reflect.DeepEqual(got, [][]string{keys}) {
		t.Fatalf("non-positive size should yield one chunk, got %v", got)
	}
	got = ChunkStrings(keys, 10)
	if !reflect.DeepEqual(got, [][]string{keys}) {
		t.Fatalf("size above len should yield one chunk, got %v", got)
	}
}

func TestChunkStringsEmptyInput(t *testing.T) {
	if got := ChunkStrings(nil, 3); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
