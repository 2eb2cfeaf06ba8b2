package controllers

import (
	"net/http"

	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// CustomerController exposes the branch-admin customer views.
type CustomerController struct {
	customers *services.CustomerService
}

// NewCustomerController creates a CustomerController.
func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// List handles GET /branchAdmin/customers: customers whose addresses fall in
// the admin's branch service pincodes.
func (cc *CustomerController) List(c *gin.Context) {
	adminID, ok := contextUserID(c)
	if !ok {
		return
	}
	page, limit := pageParams(c)

	customers, pagination, svcErr := cc.customers.ListForAdmin(c.Request.Context(), adminID, c.Query("search"), c.Query("sortOrder"), page, limit)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"customers":  customers,
		"pagination": pagination,
	})
}

// Detail handles GET /branchAdmin/customers/:userId.
func (cc *CustomerController) Detail(c *gin.Context) {
	userID, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	detail, orders, svcErr := cc.customers.Detail(c.Request.Context(), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"customer": detail,
		"orders":   orders,
	})
}
