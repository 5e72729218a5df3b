package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/dal"
)

const maxSuggestions = 5

// CarQuery holds the optional /cars filters
type CarQuery struct {
	Make   string
	Model  string
	Budget float64
	Year   int
}

// CarResponse defines an HTTP response struct
type CarResponse struct {
	TotalVehicles    int        `json:"total_vehicles"`
	MatchingVehicles int        `json:"matching_vehicles"`
	Lowest           float64    `json:"lowest,omitempty"`
	Median           float64    `json:"median,omitempty"`
	Highest          float64    `json:"highest,omitempty"`
	Suggestions      []*dal.Car `json:"suggestions"`
}

// GetCars defines a GET handler to search the catalog
func (h *httpServer) GetCars(w http.ResponseWriter, r *http.Request) {
	vars := r.URL.Query()
	w.Header().Add("Content-Type", "application/json")

	budget, err := validateBudget(w, vars)
	if err != nil {
		h.log.Warn("budget validation failed", "error", err)
		return
	}

	year, err := validateYear(w, vars)
	if err != nil {
		h.log.Warn("year validation failed", "error", err)
		return
	}

	q := CarQuery{
		Make:   vars.Get("make"),
		Model:  vars.Get("model"),
		Budget: budget,
		Year:   year,
	}

	h.writeJSON(w, h.search(q))
}

// GetSellers lists every seller with its inventory count, in first-seen order
func (h *httpServer) GetSellers(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	h.writeJSON(w, h.catalog.Report())
}

// GetSeller returns one seller with its inventory
func (h *httpServer) GetSeller(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	name := mux.Vars(r)["name"]

	seller, ok := h.catalog.Seller(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("seller not found: %s", name))
		return
	}
	h.writeJSON(w, seller)
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *httpServer) writeJSON(w http.ResponseWriter, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.log.Error("encode response", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(ErrorResponse{Error: msg})
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func validateYear(w http.ResponseWriter, vars url.Values) (int, error) {
	year := vars.Get("year")
	if year != "" {
		yearInt, err := strconv.Atoi(year)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return 0, err
		}
		if yearInt < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("year must be a positive number: %d", yearInt))
			return 0, errors.New("year must be a positive number")
		}
		return yearInt, nil
	}
	return 0, nil
}

func validateBudget(w http.ResponseWriter, vars url.Values) (float64, error) {
	budget := vars.Get("budget")
	if budget != "" {
		budgetDecimal, err := strconv.ParseFloat(budget, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return 0.0, err
		}
		if budgetDecimal < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("budget must be a positive number: %v", budgetDecimal))
			return 0.0, errors.New("budget must be a positive number")
		}
		return budgetDecimal, nil
	}
	return 0.0, nil
}

func (h *httpServer) search(q CarQuery) CarResponse {
	var matches []*dal.Car
	for _, car := range h.catalog.Cars {
		if makeMatch(car, q.Make) && modelMatch(car, q.Model) && budgetMatch(car, q.Budget) && yearMatch(car, q.Year) {
			matches = append(matches, car)
		}
	}

	sorted := MergeSort(matches)
	resp := findStats(sorted)
	resp.TotalVehicles = len(h.catalog.Cars)
	resp.MatchingVehicles = len(matches)
	resp.Suggestions = distinctMakes(sorted, maxSuggestions)
	return resp
}

func makeMatch(car *dal.Car, makeName string) bool {
	return makeName == "" || strings.Contains(strings.ToLower(car.Manufacturer), strings.ToLower(makeName))
}

func modelMatch(car *dal.Car, modelName string) bool {
	return modelName == "" || strings.Contains(strings.ToLower(car.Model), strings.ToLower(modelName))
}

// budgetMatch accepts prices within 10% of the budget.
func budgetMatch(car *dal.Car, budget float64) bool {
	if budget <= 0 {
		return true
	}
	above := budget * 1.10
	below := budget * 0.9
	return car.Price <= above && car.Price >= below
}

func yearMatch(car *dal.Car, year int) bool {
	return year <= 0 || car.Year == year
}

// findStats expects cars sorted by price
func findStats(sorted []*dal.Car) CarResponse {
	length := len(sorted)
	if length == 0 {
		return CarResponse{}
	}
	return CarResponse{Lowest: sorted[0].Price, Median: sorted[length/2].Price, Highest: sorted[length-1].Price}
}

// distinctMakes takes up to n cars from sorted, one per manufacturer
func distinctMakes(sorted []*dal.Car, n int) []*dal.Car {
	brands := make(map[string]struct{})
	out := []*dal.Car{}
	for _, car := range sorted {
		if len(out) == n {
			break
		}
		if _, ok := brands[car.Manufacturer]; ok {
			continue
		}
		brands[car.Manufacturer] = struct{}{}
		out = append(out, car)
	}
	return out
}

// MergeSort returns cars ordered by ascending price; equal prices keep input order
func MergeSort(arrCar []*dal.Car) []*dal.Car {
	if len(arrCar) <= 1 {
		return arrCar
	}

	middle := len(arrCar) / 2
	left := MergeSort(arrCar[:middle])
	right := MergeSort(arrCar[middle:])
	return merge(left, right)
}

func merge(left, right []*dal.Car) []*dal.Car {
	result := make([]*dal.Car, len(left)+len(right))
	for i := 0; len(left) > 0 || len(right) > 0; i++ {
		if len(left) > 0 && len(right) > 0 {
			if left[0].Price <= right[0].Price {
				result[i] = left[0]
				left = left[1:]
			} else {
				result[i] = right[0]
				right = right[1:]
			}
		} else if len(left) > 0 {
			result[i] = left[0]
			left = left[1:]
		} else if len(right) > 0 {
			result[i] = right[0]
			right = right[1:]
		}
	}
	return result
}
