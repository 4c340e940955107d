package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/qa-console/models"
)

const routeChat = "/chat"

type chatAPI struct {
	h *httpServerAdapter
}

// SendMessage implements [ChatAPI].
func (c *chatAPI) SendMessage(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var resp models.ChatResponse

	r := c.h.request(ctx, routeChat, &resp).SetBody(req)
	if err := c.h.do(r, http.MethodPost, routeChat); err != nil {
		return models.ChatResponse{}, err
	}

	return resp, nil
}
