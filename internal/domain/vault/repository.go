package vault

import "context"

type Repository interface {
	List(ctx context.Context, userID string) ([]Item, error)

	// Get loads by ID regardless of owner; the ownership decision belongs
	// to the service guard, which needs the stored owner to make it.
	Get(ctx context.Context, itemID string) (Item, error)

	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID string) error
}
