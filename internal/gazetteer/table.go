package gazetteer

// defaultEntries is the curated locality table. It is India-heavy on purpose:
// birth-chart lookups skew strongly toward Indian localities, and the live
// geocoder resolves the long tail elsewhere. Coordinates and timezones are
// pre-verified; keep the table in rough popularity order, since Search
// returns matches in insertion order.
var defaultEntries = []Entry{
	// Delhi NCR
	{Name: "New Delhi", State: "Delhi", Country: "India", Latitude: 28.6139, Longitude: 77.2090, Timezone: "Asia/Kolkata"},
	{Name: "Delhi", State: "Delhi", Country: "India", Latitude: 28.7041, Longitude: 77.1025, Timezone: "Asia/Kolkata"},
	{Name: "Connaught Place", State: "Delhi", Country: "India", Latitude: 28.6315, Longitude: 77.2167, Timezone: "Asia/Kolkata"},
	{Name: "Karol Bagh", State: "Delhi", Country: "India", Latitude: 28.6519, Longitude: 77.1909, Timezone: "Asia/Kolkata"},
	{Name: "Gurgaon", State: "Haryana", Country: "India", Latitude: 28.4595, Longitude: 77.0266, Timezone: "Asia/Kolkata"},
	{Name: "Noida", State: "Uttar Pradesh", Country: "India", Latitude: 28.5355, Longitude: 77.3910, Timezone: "Asia/Kolkata"},
	{Name: "Faridabad", State: "Haryana", Country: "India", Latitude: 28.4089, Longitude: 77.3178, Timezone: "Asia/Kolkata"},
	{Name: "Ghaziabad", State: "Uttar Pradesh", Country: "India", Latitude: 28.6692, Longitude: 77.4538, Timezone: "Asia/Kolkata"},

	// Major metros
	{Name: "Mumbai", State: "Maharashtra", Country: "India", Latitude: 19.0760, Longitude: 72.8777, Timezone: "Asia/Kolkata"},
	{Name: "Kolkata", State: "West Bengal", Country: "India", Latitude: 22.5726, Longitude: 88.3639, Timezone: "Asia/Kolkata"},
	{Name: "Chennai", State: "Tamil Nadu", Country: "India", Latitude: 13.0827, Longitude: 80.2707, Timezone: "Asia/Kolkata"},
	{Name: "Bengaluru", State: "Karnataka", Country: "India", Latitude: 12.9716, Longitude: 77.5946, Timezone: "Asia/Kolkata"},
	{Name: "Hyderabad", State: "Telangana", Country: "India", Latitude: 17.3850, Longitude: 78.4867, Timezone: "Asia/Kolkata"},
	{Name: "Pune", State: "Maharashtra", Country: "India", Latitude: 18.5204, Longitude: 73.8567, Timezone: "Asia/Kolkata"},
	{Name: "Ahmedabad", State: "Gujarat", Country: "India", Latitude: 23.0225, Longitude: 72.5714, Timezone: "Asia/Kolkata"},
	{Name: "Surat", State: "Gujarat", Country: "India", Latitude: 21.1702, Longitude: 72.8311, Timezone: "Asia/Kolkata"},
	{Name: "Jaipur", State: "Rajasthan", Country: "India", Latitude: 26.9124, Longitude: 75.7873, Timezone: "Asia/Kolkata"},
	{Name: "Lucknow", State: "Uttar Pradesh", Country: "India", Latitude: 26.8467, Longitude: 80.9462, Timezone: "Asia/Kolkata"},
	{Name: "Kanpur", State: "Uttar Pradesh", Country: "India", Latitude: 26.4499, Longitude: 80.3319, Timezone: "Asia/Kolkata"},
	{Name: "Nagpur", State: "Maharashtra", Country: "India", Latitude: 21.1458, Longitude: 79.0882, Timezone: "Asia/Kolkata"},
	{Name: "Indore", State: "Madhya Pradesh", Country: "India", Latitude: 22.7196, Longitude: 75.8577, Timezone: "Asia/Kolkata"},
	{Name: "Bhopal", State: "Madhya Pradesh", Country: "India", Latitude: 23.2599, Longitude: 77.4126, Timezone: "Asia/Kolkata"},
	{Name: "Patna", State: "Bihar", Country: "India", Latitude: 25.5941, Longitude: 85.1376, Timezone: "Asia/Kolkata"},
	{Name: "Vadodara", State: "Gujarat", Country: "India", Latitude: 22.3072, Longitude: 73.1812, Timezone: "Asia/Kolkata"},
	{Name: "Ludhiana", State: "Punjab", Country: "India", Latitude: 30.9010, Longitude: 75.8573, Timezone: "Asia/Kolkata"},
	{Name: "Agra", State: "Uttar Pradesh", Country: "India", Latitude: 27.1767, Longitude: 78.0081, Timezone: "Asia/Kolkata"},
	{Name: "Varanasi", State: "Uttar Pradesh", Country: "India", Latitude: 25.3176, Longitude: 82.9739, Timezone: "Asia/Kolkata"},
	{Name: "Amritsar", State: "Punjab", Country: "India", Latitude: 31.6340, Longitude: 74.8723, Timezone: "Asia/Kolkata"},
	{Name: "Chandigarh", State: "Chandigarh", Country: "India", Latitude: 30.7333, Longitude: 76.7794, Timezone: "Asia/Kolkata"},
	{Name: "Kochi", State: "Kerala", Country: "India", Latitude: 9.9312, Longitude: 76.2673, Timezone: "Asia/Kolkata"},
	{Name: "Thiruvananthapuram", State: "Kerala", Country: "India", Latitude: 8.5241, Longitude: 76.9366, Timezone: "Asia/Kolkata"},
	{Name: "Coimbatore", State: "Tamil Nadu", Country: "India", Latitude: 11.0168, Longitude: 76.9558, Timezone: "Asia/Kolkata"},
	{Name: "Madurai", State: "Tamil Nadu", Country: "India", Latitude: 9.9252, Longitude: 78.1198, Timezone: "Asia/Kolkata"},
	{Name: "Visakhapatnam", State: "Andhra Pradesh", Country: "India", Latitude: 17.6868, Longitude: 83.2185, Timezone: "Asia/Kolkata"},
	{Name: "Guwahati", State: "Assam", Country: "India", Latitude: 26.1445, Longitude: 91.7362, Timezone: "Asia/Kolkata"},
	{Name: "Bhubaneswar", State: "Odisha", Country: "India", Latitude: 20.2961, Longitude: 85.8245, Timezone: "Asia/Kolkata"},
	{Name: "Dehradun", State: "Uttarakhand", Country: "India", Latitude: 30.3165, Longitude: 78.0322, Timezone: "Asia/Kolkata"},
	{Name: "Shimla", State: "Himachal Pradesh", Country: "India", Latitude: 31.1048, Longitude: 77.1734, Timezone: "Asia/Kolkata"},
	{Name: "Srinagar", State: "Jammu and Kashmir", Country: "India", Latitude: 34.0837, Longitude: 74.7973, Timezone: "Asia/Kolkata"},
	{Name: "Nashik", State: "Maharashtra", Country: "India", Latitude: 19.9975, Longitude: 73.7898, Timezone: "Asia/Kolkata"},
	{Name: "Rajkot", State: "Gujarat", Country: "India", Latitude: 22.3039, Longitude: 70.8022, Timezone: "Asia/Kolkata"},
	{Name: "Mysuru", State: "Karnataka", Country: "India", Latitude: 12.2958, Longitude: 76.6394, Timezone: "Asia/Kolkata"},
	{Name: "Ranchi", State: "Jharkhand", Country: "India", Latitude: 23.3441, Longitude: 85.3096, Timezone: "Asia/Kolkata"},
	{Name: "Raipur", State: "Chhattisgarh", Country: "India", Latitude: 21.2514, Longitude: 81.6296, Timezone: "Asia/Kolkata"},
	{Name: "Jodhpur", State: "Rajasthan", Country: "India", Latitude: 26.2389, Longitude: 73.0243, Timezone: "Asia/Kolkata"},
	{Name: "Udaipur", State: "Rajasthan", Country: "India", Latitude: 24.5854, Longitude: 73.7125, Timezone: "Asia/Kolkata"},
	{Name: "Haridwar", State: "Uttarakhand", Country: "India", Latitude: 29.9457, Longitude: 78.1642, Timezone: "Asia/Kolkata"},
	{Name: "Rishikesh", State: "Uttarakhand", Country: "India", Latitude: 30.0869, Longitude: 78.2676, Timezone: "Asia/Kolkata"},
	{Name: "Ujjain", State: "Madhya Pradesh", Country: "India", Latitude: 23.1765, Longitude: 75.7885, Timezone: "Asia/Kolkata"},
	{Name: "Tirupati", State: "Andhra Pradesh", Country: "India", Latitude: 13.6288, Longitude: 79.4192, Timezone: "Asia/Kolkata"},
	{Name: "Puri", State: "Odisha", Country: "India", Latitude: 19.8135, Longitude: 85.8312, Timezone: "Asia/Kolkata"},

	// Subcontinent neighbours
	{Name: "Kathmandu", State: "Bagmati", Country: "Nepal", Latitude: 27.7172, Longitude: 85.3240, Timezone: "Asia/Kathmandu"},
	{Name: "Colombo", State: "Western Province", Country: "Sri Lanka", Latitude: 6.9271, Longitude: 79.8612, Timezone: "Asia/Colombo"},
	{Name: "Dhaka", State: "Dhaka Division", Country: "Bangladesh", Latitude: 23.8103, Longitude: 90.4125, Timezone: "Asia/Dhaka"},
	{Name: "Karachi", State: "Sindh", Country: "Pakistan", Latitude: 24.8607, Longitude: 67.0011, Timezone: "Asia/Karachi"},
	{Name: "Lahore", State: "Punjab", Country: "Pakistan", Latitude: 31.5204, Longitude: 74.3587, Timezone: "Asia/Karachi"},

	// World cities commonly queried from the diaspora
	{Name: "London", State: "England", Country: "United Kingdom", Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London"},
	{Name: "New York", State: "New York", Country: "United States", Latitude: 40.7128, Longitude: -74.0060, Timezone: "America/New_York"},
	{Name: "San Francisco", State: "California", Country: "United States", Latitude: 37.7749, Longitude: -122.4194, Timezone: "America/Los_Angeles"},
	{Name: "Chicago", State: "Illinois", Country: "United States", Latitude: 41.8781, Longitude: -87.6298, Timezone: "America/Chicago"},
	{Name: "Toronto", State: "Ontario", Country: "Canada", Latitude: 43.6532, Longitude: -79.3832, Timezone: "America/Toronto"},
	{Name: "Dubai", State: "Dubai", Country: "United Arab Emirates", Latitude: 25.2048, Longitude: 55.2708, Timezone: "Asia/Dubai"},
	{Name: "Singapore", State: "", Country: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Timezone: "Asia/Singapore"},
	{Name: "Sydney", State: "New South Wales", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093, Timezone: "Australia/Sydney"},
}
