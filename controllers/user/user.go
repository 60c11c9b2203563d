package userController

import (
	"errors"
	"log"

	"cropconnect/config"
	"cropconnect/database"
	"cropconnect/directory"
	"cropconnect/middleware"
	"cropconnect/models"
	userValidators "cropconnect/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminListUsers fetches the whole directory and applies the requested
// filter and sort in memory, the same way the original admin view does.
func AdminListUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedListQuery").(*userValidators.ListQueryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var users []models.User
	if err := database.Database.Db.Where("is_deleted = false").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	result := directory.Apply(users,
		directory.Filter{Role: reqData.Role, Region: reqData.Region, Search: reqData.Search},
		directory.Sort{Field: reqData.SortBy, Direction: reqData.Order},
	)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", result)
}

// AdminCreateUser provisions an account from the admin directory.
func AdminCreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*userValidators.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	if reqData.AssignedTo != nil {
		if err := verifyEmployee(db, *reqData.AssignedTo); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Assigned employee not found!", nil)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:       reqData.Name,
		Email:      reqData.Email,
		Password:   string(hashedPassword),
		Role:       reqData.Role,
		Region:     reqData.Region,
		AssignedTo: reqData.AssignedTo,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", newUser)
}

// AdminUpdateUser applies a partial edit to an existing user.
func AdminUpdateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateUser").(*userValidators.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.Role != nil {
		user.Role = *reqData.Role
	}
	if reqData.Region != nil {
		user.Region = *reqData.Region
	}
	if reqData.AssignedTo != nil {
		if user.Role != models.RoleFarmer {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Only farmers can be assigned to an employee!", nil)
		}
		if err := verifyEmployee(db, *reqData.AssignedTo); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Assigned employee not found!", nil)
		}
		user.AssignedTo = reqData.AssignedTo
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// AdminDeleteUser soft deletes a user.
func AdminDeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	if err := db.Model(&user).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

// AssignedFarmers lists the farmers assigned to an employee, recomputed by
// linear scan over the directory.
func AssignedFarmers(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employeeId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid employee id!", nil)
	}

	db := database.Database.Db

	if err := verifyEmployee(db, uint(employeeID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	var users []models.User
	if err := db.Where("is_deleted = false").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assigned farmers fetched successfully!",
		directory.AssignedFarmers(users, uint(employeeID)))
}

func verifyEmployee(db *gorm.DB, id uint) error {
	return db.Where("id = ? AND role = ? AND is_deleted = false", id, models.RoleEmployee).
		First(&models.User{}).Error
}
