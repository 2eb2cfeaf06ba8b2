package routes

import (
	"ecommerce-backend/controllers"
	"ecommerce-backend/middleware"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Products      *controllers.ProductController
	UserProducts  *controllers.UserProductController
	DeliveryBoys  *controllers.DeliveryBoyController
	BranchAdmins  *controllers.BranchAdminController
	Customers     *controllers.CustomerController
	Reviews       *controllers.ReviewController
	Brands        *controllers.BrandController
	Notifications *controllers.NotificationController
}

// RegisterRoutes mounts every route group on the engine.
func RegisterRoutes(r *gin.Engine, c Controllers, jwtSecret []byte) {
	adminAuth := middleware.Authenticate(jwtSecret, services.RoleBranchAdmin)
	deliveryAuth := middleware.Authenticate(jwtSecret, services.RoleDeliveryBoy)
	anyAuth := middleware.Authenticate(jwtSecret)

	// Branch inventory allocation.
	r.POST("/assignToBranch", c.Products.AssignToBranch)

	productRoutes := r.Group("/product")
	{
		productRoutes.POST("/addProduct", c.Products.CreateProduct)
		productRoutes.GET("/getAllProducts", c.Products.ListProducts)
		productRoutes.GET("/getProductById/:id", c.Products.GetProduct)
		productRoutes.PUT("/updateProduct/:id", c.Products.UpdateProduct)
		productRoutes.DELETE("/deleteProduct/:id", c.Products.DeleteProduct)
		productRoutes.PATCH("/addQuantity/:id", c.Products.AddQuantity)
		productRoutes.PATCH("/removeQuantity/:id", c.Products.RemoveQuantity)
		productRoutes.GET("/availableQuantity/:id", c.Products.AvailableQuantity)
		productRoutes.GET("/branchQuantity/:branchId/:productId", c.Products.BranchQuantity)
		productRoutes.GET("/getBranches", c.Products.Branches)
		productRoutes.GET("/getBrands", c.Products.Brands)
		productRoutes.GET("/getSizes", c.Products.Sizes)
		productRoutes.GET("/notifications", c.Notifications.List)
	}

	userRoutes := r.Group("/user")
	{
		userRoutes.GET("/products/:brand", c.UserProducts.ListByBrand)
		userRoutes.GET("/product/:id", c.UserProducts.ProductDetail)
		userRoutes.GET("/product/:id/buyItWith", c.UserProducts.BuyItWith)
		userRoutes.GET("/product/:id/related", c.UserProducts.RelatedProducts)
		userRoutes.GET("/product/:id/reviews", c.Reviews.ListByProduct)
		userRoutes.GET("/product/:id/rating", c.Reviews.Rating)
		userRoutes.POST("/product/:id/review", anyAuth, c.Reviews.Add)
		userRoutes.GET("/reviews", c.Reviews.ListAll)
		userRoutes.GET("/banners", c.Brands.Banners)
	}

	brandRoutes := r.Group("/brand")
	{
		brandRoutes.POST("/addBrand", c.Brands.Create)
		brandRoutes.GET("/getAllBrands", c.Brands.List)
		brandRoutes.GET("/getBrand/:id", c.Brands.Get)
		brandRoutes.PUT("/updateBrand/:id", c.Brands.Update)
		brandRoutes.DELETE("/deleteBrand/:id", c.Brands.Delete)
	}

	deliveryRoutes := r.Group("/delivery")
	{
		deliveryRoutes.POST("/addDeliveryBoy", c.DeliveryBoys.Add)
		deliveryRoutes.GET("/getAllDeliveryBoys", c.DeliveryBoys.List)
		deliveryRoutes.GET("/getDeliveryBoy/:id", c.DeliveryBoys.Get)
		deliveryRoutes.PUT("/updateDeliveryBoy/:id", c.DeliveryBoys.Update)
		deliveryRoutes.DELETE("/deleteDeliveryBoy/:id", c.DeliveryBoys.Delete)
	}

	deliveryBoyRoutes := r.Group("/deliveryBoy")
	{
		deliveryBoyRoutes.POST("/login", c.DeliveryBoys.Login)
		deliveryBoyRoutes.GET("/profile", deliveryAuth, c.DeliveryBoys.Profile)
		deliveryBoyRoutes.PUT("/profile", deliveryAuth, c.DeliveryBoys.UpdateProfile)
	}

	branchAdminRoutes := r.Group("/branchAdmin")
	{
		branchAdminRoutes.POST("/register", c.BranchAdmins.Register)
		branchAdminRoutes.POST("/login", c.BranchAdmins.Login)
		branchAdminRoutes.POST("/logout", c.BranchAdmins.Logout)
		branchAdminRoutes.POST("/forgotPassword", c.BranchAdmins.ForgotPassword)
		branchAdminRoutes.POST("/verifyOtp", c.BranchAdmins.VerifyOTP)
		branchAdminRoutes.POST("/resetPassword", c.BranchAdmins.ResetPassword)
		branchAdminRoutes.GET("/profile", adminAuth, c.BranchAdmins.Profile)
		branchAdminRoutes.PUT("/profile", adminAuth, c.BranchAdmins.UpdateProfile)
		branchAdminRoutes.GET("/customers", adminAuth, c.Customers.List)
		branchAdminRoutes.GET("/customers/:userId", adminAuth, c.Customers.Detail)
	}
}
