// pkg/util/cache_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "testing"

type cacheTestPayload struct {
	Name  string
	Count int
}

func TestCacheStoreAndRetrieveObject(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	want := cacheTestPayload{Name: "KOAK", Count: 3}
	if err := CacheStoreObject("test-payload.msgpack", want); err != nil {
		t.Fatalf("CacheStoreObject: %v", err)
	}

	var got cacheTestPayload
	if _, err := CacheRetrieveObject("test-payload.msgpack", &got); err != nil {
		t.Fatalf("CacheRetrieveObject: %v", err)
	}
	if got != want {
		t.Errorf("CacheRetrieveObject = %+v, want %+v", got, want)
	}
}

func TestCacheRetrieveObjectMissing(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var got cacheTestPayload
	if _, err := CacheRetrieveObject("does-not-exist.msgpack", &got); err == nil {
		t.Errorf("CacheRetrieveObject on a missing file returned no error")
	}
}

func TestCacheCullObjectsRemovesEntriesOverBudget(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	for i := 0; i < 5; i++ {
		if err := CacheStoreObject(cachePayloadName(i), cacheTestPayload{Name: cachePayloadName(i), Count: i}); err != nil {
			t.Fatalf("CacheStoreObject: %v", err)
		}
	}

	if err := CacheCullObjects(1); err != nil {
		t.Fatalf("CacheCullObjects: %v", err)
	}

	// A 1-byte budget is smaller than any stored entry, so culling must
	// remove at least some of the five entries.
	var remaining int
	for i := 0; i < 5; i++ {
		var got cacheTestPayload
		if _, err := CacheRetrieveObject(cachePayloadName(i), &got); err == nil {
			remaining++
		}
	}
	if remaining >= 5 {
		t.Errorf("CacheCullObjects(1) left %d of 5 entries, want culling to have removed some", remaining)
	}
}

func cachePayloadName(i int) string {
	return string(rune('a'+i)) + ".msgpack"
}
