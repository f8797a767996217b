package web

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	embedded "github.com/goserg/batchrating"
	"github.com/goserg/batchrating/internal/cache/mem"
	"github.com/goserg/batchrating/internal/competition"
	"github.com/goserg/batchrating/internal/config"
	"github.com/goserg/batchrating/internal/elo"
	"github.com/goserg/batchrating/internal/metrics"
	"github.com/goserg/batchrating/internal/service"
	"github.com/goserg/batchrating/internal/web/webpath"
)

type Server struct {
	ratingService *service.RatingService
	cache         *mem.Cache
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(rs *service.RatingService, m *metrics.Metrics, cfg config.Server, log *logrus.Entry) (*Server, error) {
	server := Server{
		ratingService: rs,
		cache:         mem.New(),
		cfg:           cfg,
		log:           log,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatRating", formatRating)
	engine.AddFunc("TeamURL", teamURL)
	engine.AddFunc("Place", func(i int) int { return i + 1 })

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: !cfg.Debug,
	})
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(errorResponse{
				Errors: []string{"too many requests"},
			})
		}
		return c.Next()
	})
	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.Team, server.handleTeam)
	app.Get(webpath.Api, func(ctx *fiber.Ctx) error {
		return ctx.JSON(webpath.Path())
	})
	app.Get(webpath.Health, func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	app.Get(webpath.Metrics, adaptor.HTTPHandler(m.Handler()))
	app.Post(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiRatings, server.handleLastRatings)
	app.Get(webpath.ApiGetPlayer, server.handlePlayer)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	var req ratingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	ratings, err := s.ratingService.GetRatings(req.convertToDomainMatches())
	if err != nil {
		var noConv *service.NoConvergenceError
		switch {
		case errors.As(err, &noConv):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(convertFailure(err, noConv.Rounds, noConv.Players))
		case errors.Is(err, elo.ErrInvalidPoints), errors.Is(err, competition.ErrEmptyName):
			return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
		}
		s.log.WithError(err).Error("rating request failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(newErrorResponse(err))
	}
	s.cache.Update(ratings.Players, ratings.Rounds)
	return ctx.JSON(convertRatings(ratings.Rounds, ratings.Players))
}

func (s *Server) handleLastRatings(ctx *fiber.Ctx) error {
	players, rounds, ok := s.cache.GetRatings()
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{
			Errors: []string{"no ratings computed yet"},
		})
	}
	return ctx.JSON(convertRatings(rounds, players))
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	players, rounds, _ := s.cache.GetRatings()
	return ctx.Render("index", fiber.Map{
		"Title":   "Ratings",
		"Players": players,
		"Rounds":  rounds,
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleTeam(ctx *fiber.Ctx) error {
	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		ctx.Status(fiber.StatusNotFound)
	} else {
		name = player.Name
	}
	place := 0
	players, _, _ := s.cache.GetRatings()
	for i := range players {
		if ok && players[i].Name == player.Name {
			place = i + 1
			break
		}
	}
	return ctx.Render("team", fiber.Map{
		"Title":  name,
		"Found":  ok,
		"Player": player,
		"Place":  place,
		"Path":   webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handlePlayer(ctx *fiber.Ctx) error {
	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{
			Errors: []string{"unknown team " + name},
		})
	}
	return ctx.JSON(ratingResponse{
		Team:        player.Name,
		Rating:      player.EloRating,
		GamesPlayed: player.GamesPlayed,
	})
}

func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

func teamURL(name string) string {
	return strings.Replace(webpath.Team, ":name", url.PathEscape(name), 1)
}
