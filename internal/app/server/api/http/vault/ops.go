package vault

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "vault-list",
		Method:      http.MethodGet,
		Path:        "/api/vault",
		Summary:     "List the caller's vault items",
		Tags:        []string{"vault"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "vault-create",
		Method:        http.MethodPost,
		Path:          "/api/vault",
		Summary:       "Store a new vault item",
		Tags:          []string{"vault"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "vault-update",
		Method:      http.MethodPut,
		Path:        "/api/vault/{id}",
		Summary:     "Update an owned vault item",
		Tags:        []string{"vault"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "vault-delete",
		Method:      http.MethodDelete,
		Path:        "/api/vault/{id}",
		Summary:     "Delete an owned vault item",
		Tags:        []string{"vault"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
