package reconcile

import (
	"context"
	"fmt"
	"sort"
)

// ReconcileOne inspects a single entity across every source.
func ReconcileOne(ctx context.Context, spec *Spec, id int) (*Result, error) {
	if spec.CacheTTL > 0 {
		key := fmt.Sprintf("%s|%d", spec.Adapter.Name(), id)
		return spec.cache().GetOrBuild(ctx, key, spec.CacheTTL, func(ctx context.Context) (*Result, error) {
			return buildResult(ctx, spec.Adapter, id)
		})
	}
	return buildResult(ctx, spec.Adapter, id)
}

// ReconcileMany inspects several entities sequentially. Results are sorted by ID.
func ReconcileMany(ctx context.Context, spec *Spec, ids []int) ([]Result, error) {
	out := make([]Result, 0, len(ids))
	for _, id := range ids {
		res, err := ReconcileOne(ctx, spec, id)
		if err != nil {
			return nil, fmt.Errorf("reconcile %s %d: %w", spec.Adapter.Name(), id, err)
		}
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func buildResult(ctx context.Context, adapter Adapter, id int) (*Result, error) {
	dbItem, err := adapter.LoadDB(ctx, id)
	if err != nil {
		return nil, err
	}
	apiItem, err := adapter.LoadAPI(ctx, id)
	if err != nil {
		return nil, err
	}
	treePresent, err := adapter.CheckTree(ctx, id)
	if err != nil {
		return nil, err
	}
	path, corpusPresent := adapter.CheckCorpus(id)

	result := &Result{
		ID:            id,
		DBPresent:     dbItem != nil,
		APIPresent:    apiItem != nil,
		TreePresent:   treePresent,
		CorpusPresent: corpusPresent,
		Mismatch:      []string{},
		Metadata:      map[string]string{},
	}

	if dbItem != nil || apiItem != nil {
		result.Name = adapter.ResolveName(dbItem, apiItem)
		for k, v := range adapter.GetMetadata(dbItem, apiItem) {
			result.Metadata[k] = v
		}
	}
	if corpusPresent {
		result.Metadata["corpus_path"] = path
	}
	if dbItem != nil && apiItem != nil {
		result.Mismatch = adapter.CompareFields(dbItem, apiItem)
	}
	return result, nil
}
