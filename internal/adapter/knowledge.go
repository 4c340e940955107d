package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/qa-console/models"
)

const (
	routeKnowledge       = "/knowledge"
	routeKnowledgeItem   = "/knowledge/{id}"
	routeKnowledgeSearch = "/knowledge/search"
)

type knowledgeAPI struct {
	h *httpServerAdapter
}

// GetList implements [KnowledgeAPI].
func (k *knowledgeAPI) GetList(ctx context.Context, params models.KnowledgeListParams) (models.KnowledgeList, error) {
	var list models.KnowledgeList

	r := k.h.request(ctx, routeKnowledge, &list)
	if params.Skip > 0 {
		r.SetQueryParam("skip", strconv.Itoa(params.Skip))
	}
	if params.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(params.Limit))
	}
	if params.Category != "" {
		r.SetQueryParam("category", params.Category)
	}

	if err := k.h.do(r, http.MethodGet, routeKnowledge); err != nil {
		return models.KnowledgeList{}, err
	}

	return list, nil
}

// Get implements [KnowledgeAPI].
func (k *knowledgeAPI) Get(ctx context.Context, id int64) (models.Knowledge, error) {
	if err := checkID(id); err != nil {
		return models.Knowledge{}, err
	}

	var item models.Knowledge
	r := k.h.request(ctx, routeKnowledgeItem, &item).
		SetPathParam("id", strconv.FormatInt(id, 10))
	if err := k.h.do(r, http.MethodGet, routeKnowledgeItem); err != nil {
		return models.Knowledge{}, err
	}

	return item, nil
}

// Create implements [KnowledgeAPI].
func (k *knowledgeAPI) Create(ctx context.Context, item models.KnowledgeCreate) (models.KnowledgeRef, error) {
	var ref models.KnowledgeRef

	r := k.h.request(ctx, routeKnowledge, &ref).SetBody(item)
	if err := k.h.do(r, http.MethodPost, routeKnowledge); err != nil {
		return models.KnowledgeRef{}, err
	}

	return ref, nil
}

// Update implements [KnowledgeAPI].
func (k *knowledgeAPI) Update(ctx context.Context, id int64, update models.KnowledgeUpdate) (models.KnowledgeRef, error) {
	if err := checkID(id); err != nil {
		return models.KnowledgeRef{}, err
	}

	var ref models.KnowledgeRef
	r := k.h.request(ctx, routeKnowledgeItem, &ref).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update)
	if err := k.h.do(r, http.MethodPut, routeKnowledgeItem); err != nil {
		return models.KnowledgeRef{}, err
	}

	return ref, nil
}

// Delete implements [KnowledgeAPI].
func (k *knowledgeAPI) Delete(ctx context.Context, id int64) (models.KnowledgeRef, error) {
	if err := checkID(id); err != nil {
		return models.KnowledgeRef{}, err
	}

	var ref models.KnowledgeRef
	r := k.h.request(ctx, routeKnowledgeItem, &ref).
		SetPathParam("id", strconv.FormatInt(id, 10))
	if err := k.h.do(r, http.MethodDelete, routeKnowledgeItem); err != nil {
		return models.KnowledgeRef{}, err
	}

	return ref, nil
}

// Search implements [KnowledgeAPI].
func (k *knowledgeAPI) Search(ctx context.Context, keyword string) (models.KnowledgeList, error) {
	var list models.KnowledgeList

	r := k.h.request(ctx, routeKnowledgeSearch, &list).SetQueryParam("q", keyword)
	if err := k.h.do(r, http.MethodGet, routeKnowledgeSearch); err != nil {
		return models.KnowledgeList{}, err
	}

	return list, nil
}

func checkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}
