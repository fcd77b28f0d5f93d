package cart

// Service orchestrates per-session cart operations on top of a Store. Every
// mutation loads the session's cart, applies the state-machine operation and
// saves it back.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetCart(sessionID string) (Cart, error) {
	return s.store.Get(sessionID)
}

func (s *Service) AddItem(sessionID string, item Item) (Cart, error) {
	return s.mutate(sessionID, func(c *Cart) { c.AddItem(item) })
}

func (s *Service) RemoveItem(sessionID string, itemID string) (Cart, error) {
	return s.mutate(sessionID, func(c *Cart) { c.RemoveItem(itemID) })
}

func (s *Service) UpdateQuantity(sessionID string, itemID string, quantity int) (Cart, error) {
	return s.mutate(sessionID, func(c *Cart) { c.UpdateQuantity(itemID, quantity) })
}

// Clear empties the cart and closes the drawer. The checkout flow calls this
// after a successful order submission.
func (s *Service) Clear(sessionID string) (Cart, error) {
	return s.mutate(sessionID, func(c *Cart) {
		c.Clear()
		c.CloseDrawer()
	})
}

func (s *Service) Toggle(sessionID string) (Cart, error) {
	return s.mutate(sessionID, func(c *Cart) { c.Toggle() })
}

func (s *Service) mutate(sessionID string, fn func(*Cart)) (Cart, error) {
	c, err := s.store.Get(sessionID)
	if err != nil {
		return Cart{}, err
	}
	fn(&c)
	if err := s.store.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}
