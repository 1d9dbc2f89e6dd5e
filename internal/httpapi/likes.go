package httpapi

import (
	"encoding/json"
	"net/http"
)

type countResponse struct {
	Count int64 `json:"count"`
}

type likedResponse struct {
	Liked bool `json:"liked"`
}

type likeRequest struct {
	PostID   string `json:"post_id"`
	DeviceID string `json:"device_id"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")
	writeJSON(w, http.StatusOK, countResponse{Count: s.likes.Count(r.Context(), postID)})
}

func (s *Server) handleCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.likes.AllCounts(r.Context()))
}

func (s *Server) handleLiked(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")
	deviceID := r.PathValue("deviceId")
	writeJSON(w, http.StatusOK, likedResponse{Liked: s.likes.IsLiked(r.Context(), postID, deviceID)})
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLikeRequest(w, r)
	if !ok {
		return
	}

	liked, err := s.likes.Like(r.Context(), req.PostID, req.DeviceID)
	if err != nil {
		// Like writes fail soft: the frontend shows the heart unfilled and
		// the visitor can tap again.
		writeJSON(w, http.StatusOK, likedResponse{Liked: false})
		return
	}
	writeJSON(w, http.StatusOK, likedResponse{Liked: liked})
}

func (s *Server) handleUnlike(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLikeRequest(w, r)
	if !ok {
		return
	}

	liked, err := s.likes.Unlike(r.Context(), req.PostID, req.DeviceID)
	if err != nil {
		writeJSON(w, http.StatusOK, likedResponse{Liked: false})
		return
	}
	writeJSON(w, http.StatusOK, likedResponse{Liked: liked})
}

func decodeLikeRequest(w http.ResponseWriter, r *http.Request) (likeRequest, bool) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return likeRequest{}, false
	}
	if req.PostID == "" || req.DeviceID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "post_id and device_id are required"})
		return likeRequest{}, false
	}
	return req, true
}
