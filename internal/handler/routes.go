package handler

import "github.com/gin-gonic/gin"

// API bundles the handlers served under /api/v1.
type API struct {
	Users       *UserHandler
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
}

// Register mounts the API routes on rg.
func (a *API) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", a.Users.CreateUser)
		users.GET("", a.Users.ListUsers)
		users.POST("/password-strength", a.Users.PasswordStrength)
		users.GET("/:id", a.Users.GetUser)
		users.PUT("/:id", a.Users.UpdateUser)
		users.DELETE("/:id", a.Users.DeleteUser)
	}

	courses := rg.Group("/courses")
	{
		courses.POST("", a.Courses.CreateCourse)
		courses.GET("", a.Courses.ListCourses)
		courses.GET("/:id", a.Courses.GetCourse)
		courses.PUT("/:id", a.Courses.UpdateCourse)
		courses.DELETE("/:id", a.Courses.DeleteCourse)
		courses.GET("/:id/enrollments", a.Courses.ListCourseEnrollments)
		courses.POST("/:id/reconcile", a.Courses.ReconcileCourse)
	}

	enrollments := rg.Group("/enrollments")
	{
		enrollments.POST("", a.Enrollments.CreateEnrollment)
		enrollments.GET("", a.Enrollments.ListEnrollments)
		enrollments.GET("/student/:id", a.Enrollments.ListStudentEnrollments)
		enrollments.GET("/:id", a.Enrollments.GetEnrollment)
		enrollments.PUT("/:id", a.Enrollments.UpdateEnrollment)
		enrollments.DELETE("/:id", a.Enrollments.DeleteEnrollment)
	}
}
