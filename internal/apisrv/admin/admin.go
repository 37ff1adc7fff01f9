// Package admin serves the dashboard endpoints of the admin API.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/dto"
)

const (
	defaultTopProducts  = 10
	defaultTopCustomers = 5
)

// Server implements handlers for admin.
type Server struct {
	dashboard dependency.Dashboard
}

// New creates a new server with admin handlers.
func New(d dependency.Dashboard) *Server {
	return &Server{dashboard: d}
}

// Routes mounts the dashboard endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", s.Dashboard)
		r.Get("/revenue-chart", s.RevenueChart)
		r.Get("/order-statistics", s.OrderStatistics)
		r.Get("/top-products", s.TopProducts)
		r.Get("/low-stock-products", s.LowStockProducts)
		r.Get("/customer-insights", s.CustomerInsights)
		r.Get("/top-customers", s.TopCustomers)
	})
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.Build(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Dashboard metrics retrieved successfully", dto.ConvertEntityDashboard(d))
}

func (s *Server) RevenueChart(w http.ResponseWriter, r *http.Request) {
	q, err := parseChartQuery(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	points, err := s.dashboard.RevenueChart(r.Context(), q.period, q.days)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Revenue chart data retrieved successfully", dto.ConvertEntityTimeSeries(points))
}

func (s *Server) OrderStatistics(w http.ResponseWriter, r *http.Request) {
	q, err := parseChartQuery(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	stats, err := s.dashboard.OrderStatistics(r.Context(), q.period, q.days)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Order statistics retrieved successfully", dto.ConvertEntityOrderStatistics(stats))
}

func (s *Server) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultTopProducts)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	tops, err := s.dashboard.TopProducts(r.Context(), limit)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Top products retrieved successfully", dto.ConvertEntityTopProducts(tops))
}

func (s *Server) LowStockProducts(w http.ResponseWriter, r *http.Request) {
	threshold, err := parseThreshold(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	products, err := s.dashboard.LowStockProducts(r.Context(), threshold)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Low stock products retrieved successfully", dto.ConvertEntityProducts(products))
}

func (s *Server) CustomerInsights(w http.ResponseWriter, r *http.Request) {
	ci, err := s.dashboard.CustomerInsights(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Customer insights retrieved successfully", dto.ConvertEntityCustomerInsights(*ci))
}

func (s *Server) TopCustomers(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultTopCustomers)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	customers, err := s.dashboard.TopCustomers(r.Context(), limit)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	dto.WriteSuccess(w, r, "Top customers retrieved successfully", dto.ConvertEntityCustomerStats(customers))
}
