package logproof

import (
	"context"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/test091/zksync-era/logtree"
	"github.com/test091/zksync-era/types"
	"golang.org/x/sync/singleflight"
)

type treeLoader func(ctx context.Context, batch types.L1BatchNumber) (*logtree.Tree, error)

// treeCache keeps the trees of the last requested batches. Sealed batches never change,
// so entries only leave the cache when they are evicted
type treeCache struct {
	trees        *lru.Cache[types.L1BatchNumber, *logtree.Tree]
	group        singleflight.Group
	load         treeLoader
	buildTimeout time.Duration
}

func newTreeCache(size int, buildTimeout time.Duration, load treeLoader) (*treeCache, error) {
	trees, err := lru.New[types.L1BatchNumber, *logtree.Tree](size)
	if err != nil {
		return nil, fmt.Errorf("error creating tree cache: %w", err)
	}
	return &treeCache{
		trees:        trees,
		load:         load,
		buildTimeout: buildTimeout,
	}, nil
}

// get returns the tree of the batch, building it if needed. Concurrent requests for the same
// batch share a single build. The build is detached from ctx: a canceled caller returns
// ctx.Err() while the build carries on for the rest of the waiters
func (c *treeCache) get(ctx context.Context, batch types.L1BatchNumber) (*logtree.Tree, error) {
	if t, ok := c.trees.Get(batch); ok {
		return t, nil
	}

	ch := c.group.DoChan(strconv.FormatUint(uint64(batch), 10), func() (interface{}, error) {
		if t, ok := c.trees.Get(batch); ok {
			return t, nil
		}
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.buildTimeout)
		defer cancel()
		t, err := c.load(buildCtx, batch)
		if err != nil {
			return nil, err
		}
		c.trees.Add(batch, t)
		return t, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		t, ok := res.Val.(*logtree.Tree)
		if !ok {
			return nil, fmt.Errorf("unexpected type %T on the tree cache", res.Val)
		}
		return t, nil
	}
}

func (c *treeCache) len() int {
	return c.trees.Len()
}
