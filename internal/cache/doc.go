// Package cache provides the LRU cache backends use for compiled native
// handles: device paths, gradient objects, font faces.
//
//	faces := cache.New[faceKey, font.Face](64,
//	    cache.WithRelease(func(_ faceKey, f font.Face) { f.Close() }))
//	face, err := faces.GetOrCreate(key, newFace)
//
// Values leave the cache only through the release callback, so a backend
// that clears its cache on Close frees every handle it created.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
