package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	WorkerHandler   *WorkerHandler
	CustomerHandler *CustomerHandler
	ServiceHandler  *ServiceHandler
}
