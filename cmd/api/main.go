package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "hse-backend/internal/adapter/http"
	"hse-backend/internal/adapter/middleware"
	"hse-backend/internal/adapter/repository/mysql"
	"hse-backend/internal/config"
	adminDomain "hse-backend/internal/domain/admin"
	bookmarkDomain "hse-backend/internal/domain/bookmark"
	investmentDomain "hse-backend/internal/domain/investment"
	investorDomain "hse-backend/internal/domain/investor"
	propertyDomain "hse-backend/internal/domain/property"
	"hse-backend/internal/infrastructure/auth"
	"hse-backend/internal/infrastructure/cache"
	"hse-backend/internal/infrastructure/db"
	"hse-backend/internal/infrastructure/media"
	"hse-backend/internal/infrastructure/otp"
	adminUC "hse-backend/internal/usecase/admin"
	bookmarkUC "hse-backend/internal/usecase/bookmark"
	investmentUC "hse-backend/internal/usecase/investment"
	investorUC "hse-backend/internal/usecase/investor"
	propertyUC "hse-backend/internal/usecase/property"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	if err := gdb.AutoMigrate(
		&propertyDomain.Property{},
		&investorDomain.Investor{},
		&adminDomain.Admin{},
		&investmentDomain.PropertyInvestment{},
		&bookmarkDomain.Bookmark{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	files, err := media.NewFSStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.WithError(err).Fatal("media store init failed")
	}

	// infrastructure
	jwt := auth.NewJWT(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	refreshStore := cache.NewRefreshTokenStore(rdb)
	otpStore := cache.NewOTPStore(rdb, cfg.OTPTTL)
	sendchamp := otp.NewSendchamp(cfg.SendchampBaseURL, cfg.SendchampKey)

	// repositories
	properties := mysql.NewPropertyRepository(gdb)
	investors := mysql.NewInvestorRepository(gdb)
	admins := mysql.NewAdminRepository(gdb)
	investments := mysql.NewInvestmentRepository(gdb)
	bookmarks := mysql.NewBookmarkRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// usecases
	investorUsecase := investorUC.NewUsecase(investors, jwt, refreshStore, sendchamp, otpStore, log)
	investmentUsecase := investmentUC.NewUsecase(unit, properties, investors, investments, log)
	propertyUsecase := propertyUC.NewUsecase(properties)
	bookmarkUsecase := bookmarkUC.NewUsecase(bookmarks, properties, investors)
	adminUsecase := adminUC.NewUsecase(admins, properties, jwt, log)

	// handlers
	h := httpadp.NewHandler()
	investorHandler := httpadp.NewInvestorHandler(investorUsecase, files)
	investmentHandler := httpadp.NewInvestmentHandler(investmentUsecase)
	propertyHandler := httpadp.NewPropertyHandler(propertyUsecase)
	bookmarkHandler := httpadp.NewBookmarkHandler(bookmarkUsecase)
	adminHandler := httpadp.NewAdminHandler(adminUsecase, files)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	investorGate := middleware.InvestorAuth(jwt, func(c echo.Context, subject string) error {
		_, err := investors.GetByInvestorID(c.Request().Context(), subject)
		return err
	})
	adminGate := middleware.AdminAuth(jwt, func(c echo.Context, subject string) error {
		_, err := admins.GetByAdminID(c.Request().Context(), subject)
		return err
	})
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	// routes
	e.GET("/health", h.Health)
	e.Static("/media", cfg.MediaDir)

	pub := e.Group("/api/investor")
	pub.POST("/signup", investorHandler.SignUp)
	pub.POST("/setpassword", investorHandler.SetPassword)
	pub.POST("/signin", investorHandler.SignIn)
	pub.POST("/refresh-token", investorHandler.Refresh)
	pub.POST("/signout", investorHandler.SignOut)

	inv := e.Group("/api/investor", investorGate)
	inv.POST("/otp/email/send", investorHandler.SendEmailOTP)
	inv.POST("/otp/email/verify", investorHandler.VerifyEmailOTP)
	inv.POST("/otp/phone/send", investorHandler.SendPhoneOTP)
	inv.POST("/otp/phone/verify", investorHandler.VerifyPhoneOTP)
	inv.PUT("/kyc/employment", investorHandler.UpdateEmployment)
	inv.PUT("/kyc/income", investorHandler.UpdateIncomeRange)
	inv.POST("/kyc/selfie", investorHandler.UploadSelfie)
	inv.POST("/kyc/address-proof", investorHandler.UploadAddressProof)
	inv.GET("/profile", investorHandler.ProfileDetails)
	inv.PUT("/profile/personal", investorHandler.UpdatePersonalProfile)
	inv.PUT("/profile/address", investorHandler.UpdateAddressProfile)
	inv.PUT("/profile/password", investorHandler.ChangePassword)
	inv.PUT("/profile/notifications", investorHandler.SetNotificationPreference)
	inv.PUT("/profile/push-token", investorHandler.SavePushToken)
	inv.DELETE("/profile", investorHandler.Deactivate)
	inv.GET("/properties", propertyHandler.List)
	inv.GET("/properties/:property_id", propertyHandler.Get)
	inv.POST("/invest", investmentHandler.Invest, idemp)
	inv.GET("/portfolio", investmentHandler.Portfolio)
	inv.POST("/bookmarks", bookmarkHandler.Add)
	inv.GET("/bookmarks", bookmarkHandler.ListMine)

	adm := e.Group("/api/admin")
	adm.POST("/signup", adminHandler.SignUp)
	adm.POST("/signin", adminHandler.SignIn)
	adm.POST("/properties", adminHandler.CreateProperty, adminGate)
	adm.GET("/properties/:property_id/investors", investmentHandler.PropertyInvestors, adminGate)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
